package catalog

import (
	"strconv"
	"strings"
)

// NormalizeIMDB returns id in canonical "tt<digits>" form.
// A bare numeric id gets the "tt" prefix; anything else is rejected.
func NormalizeIMDB(id string) (string, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimPrefix(id, "imdb:")
	digits := strings.TrimPrefix(id, "tt")
	if digits == "" || !isDigits(digits) {
		return "", false
	}
	return "tt" + digits, true
}

// NormalizeTMDB parses a TMDB id, accepting an optional "tmdb:" prefix.
func NormalizeTMDB(id string) (int64, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimPrefix(id, "tmdb:")
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// NormalizeID normalizes id according to its source, returning the canonical text form.
func NormalizeID(src Source, id string) (string, bool) {
	switch src {
	case SourceIMDB:
		return NormalizeIMDB(id)
	case SourceTMDB:
		n, ok := NormalizeTMDB(id)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
