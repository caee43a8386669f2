package match

import (
	"github.com/hbollon/go-edlib"
)

// Confidence represents the confidence level of a title match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
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

// Result represents the result of a fuzzy title match.
type Result struct {
	Title      string     // The matched candidate title
	Score      float64    // Jaro-Winkler similarity score (0.0-1.0)
	Confidence Confidence // Confidence level based on score
}

// BestTitle finds the closest candidate to a query the user typed.
// Uses Jaro-Winkler similarity, which favors prefix matches (good for media
// titles). Used for "did you mean" suggestions when a search comes back
// empty.
func BestTitle(query string, candidates []string) Result {
	if len(candidates) == 0 {
		return Result{Confidence: ConfidenceNone}
	}

	normalizedQuery := CleanTitle(query)

	best := Result{
		Score:      0,
		Confidence: ConfidenceNone,
	}

	for _, candidate := range candidates {
		normalizedCandidate := CleanTitle(candidate)

		// Jaro-Winkler similarity (0 to 1)
		score := float64(edlib.JaroWinklerSimilarity(normalizedQuery, normalizedCandidate))

		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Title = "" // Clear title for no-match case
	}

	return best
}
