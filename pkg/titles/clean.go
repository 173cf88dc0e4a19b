// Package titles normalizes media titles and ranks search candidates by similarity.
package titles

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanRegex matches II-IX after a space. "I" and "X" are left alone
// ("I Robot", "American History X"), as is a numeral at the start of a title.
var romanRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanValues = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

// yearSuffix matches a trailing release year, optionally in parentheses.
var yearSuffix = regexp.MustCompile(`^(.*?)[\s.]*\(?((?:19|20)\d{2})\)?\s*$`)

var articles = []string{"the ", "a ", "an "}

// Clean lowercases a title and strips accents, punctuation and leading articles,
// turning Roman numerals into digits so "Rocky III" and "Rocky 3" compare equal.
func Clean(title string) string {
	s := strings.ToLower(title)
	s = romanRegex.ReplaceAllStringFunc(s, func(m string) string {
		return " " + romanValues[strings.TrimSpace(m)]
	})
	s = foldAccents(s)

	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ", "_", " ").Replace(s)

	// Each subtitle part may start with its own article: "Leon: The Professional".
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = trimArticle(strings.TrimSpace(p))
	}
	s = strings.Join(parts, " ")

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// SplitYear separates a trailing year from a search term: "Alien (1979)" → "Alien", 1979.
// A term that is only a year, or ends in a number that cannot be a release year
// yet ("Blade Runner 2049"), is returned unchanged.
func SplitYear(term string) (string, int) {
	term = strings.TrimSpace(term)
	m := yearSuffix.FindStringSubmatch(term)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return term, 0
	}
	year, _ := strconv.Atoi(m[2])
	if year < 1888 || year > time.Now().Year()+2 {
		return term, 0
	}
	return strings.TrimSpace(m[1]), year
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func trimArticle(s string) string {
	for _, a := range articles {
		if rest, ok := strings.CutPrefix(s, a); ok {
			return rest
		}
	}
	return s
}
