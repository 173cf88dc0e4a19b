package titles

import (
	"regexp"
	"slices"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b\d+\b`)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // < 0.70
	ConfidenceLow                      // >= 0.70
	ConfidenceMedium                   // >= 0.85
	ConfidenceHigh                     // >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// ConfidenceFor maps a score to its bucket.
func ConfidenceFor(score float64) Confidence {
	switch {
	case score >= 0.95:
		return ConfidenceHigh
	case score >= 0.85:
		return ConfidenceMedium
	case score >= 0.70:
		return ConfidenceLow
	}
	return ConfidenceNone
}

// Similarity compares two titles after cleaning them. It is Jaro-Winkler, which favors
// shared prefixes, adjusted so that sequel numbers must agree: "Rocky 3" scores higher
// against "Rocky III" than against "Rocky II".
func Similarity(query, candidate string) float64 {
	q, c := Clean(query), Clean(candidate)
	if q == "" || c == "" {
		return 0
	}
	score := float64(edlib.JaroWinklerSimilarity(q, c))
	return adjustForNumbers(score, numberRegex.FindAllString(q, -1), numberRegex.FindAllString(c, -1))
}

func adjustForNumbers(score float64, queryNums, candNums []string) float64 {
	if len(queryNums) == 0 {
		return score
	}
	if len(candNums) == 0 {
		return score * 0.85
	}
	for _, n := range queryNums {
		if slices.Contains(candNums, n) {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}

// Scored pairs an item with its similarity to the query.
type Scored[T any] struct {
	Item       T
	Score      float64
	Confidence Confidence
}

// Rank scores items against query and sorts them best first. Ties keep their input
// order. When year is non-zero, items whose yearOf matches get a small boost.
func Rank[T any](query string, year int, items []T, titleOf func(T) string, yearOf func(T) int) []Scored[T] {
	ranked := make([]Scored[T], 0, len(items))
	for _, it := range items {
		score := Similarity(query, titleOf(it))
		if year != 0 && yearOf != nil {
			switch y := yearOf(it); {
			case y == year:
				score = min(score*1.05, 1.0)
			case y != 0:
				score *= 0.95
			}
		}
		ranked = append(ranked, Scored[T]{Item: it, Score: score, Confidence: ConfidenceFor(score)})
	}
	slices.SortStableFunc(ranked, func(a, b Scored[T]) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return ranked
}

// Best returns the highest-scoring candidate title, or "" when none reaches ConfidenceLow.
func Best(query string, candidates []string) (string, Confidence) {
	ranked := Rank(query, 0, candidates, func(s string) string { return s }, nil)
	if len(ranked) == 0 || ranked[0].Confidence == ConfidenceNone {
		return "", ConfidenceNone
	}
	return ranked[0].Item, ranked[0].Confidence
}
