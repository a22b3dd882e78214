// Package rating maps numeric movie scores to qualitative labels.
package rating

import (
	"errors"
	"math"

	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

// ErrInvalidScore is returned for scores outside [0, 10] or off the 0.5 grid.
var ErrInvalidScore = errors.New("score must be between 0 and 10 in steps of 0.5")

// Classify returns the label for a score. It accepts any value and never fails.
//
// Scores in the open interval (6, 7) and above 9 fall through to Masterpiece.
func Classify(score float64) string {
	switch {
	case score <= 4:
		return models.LabelPoor
	case score > 4 && score <= 6:
		return models.LabelAverage
	case score >= 7 && score <= 9:
		return models.LabelGood
	default:
		return models.LabelMasterpiece
	}
}

// ValidateScore rejects scores Classify should never be asked to label.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < models.MinScore || score > models.MaxScore {
		return ErrInvalidScore
	}
	if steps := score / models.ScoreStep; steps != math.Trunc(steps) {
		return ErrInvalidScore
	}
	return nil
}

// IsLabel reports whether s is one of the known labels.
func IsLabel(s string) bool {
	for _, l := range models.Labels {
		if l == s {
			return true
		}
	}
	return false
}
