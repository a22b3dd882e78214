package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating labels derived from a score.
const (
	LabelPoor        = "Poor"
	LabelAverage     = "Average"
	LabelGood        = "Good"
	LabelMasterpiece = "Masterpiece"
)

// Labels lists every label in ascending order of quality.
var Labels = []string{LabelPoor, LabelAverage, LabelGood, LabelMasterpiece}

// Score and watched-year bounds accepted by the ledger.
const (
	MinScore       = 0.0
	MaxScore       = 10.0
	ScoreStep      = 0.5
	MinWatchedYear = 1900
	MaxWatchedYear = 2100
)

// RatingDB represents a row of the filmes table
type RatingDB struct {
	RatingID    uuid.UUID `json:"id" db:"id"`                     // Primary key
	UserID      uuid.UUID `json:"user_id" db:"usuario_id"`        // Owning user
	Title       string    `json:"title" db:"titulo"`              // Title as returned by the catalog
	Year        *int      `json:"year" db:"ano"`                  // Release year, nil when the catalog omitted it
	WatchedYear int       `json:"watched_year" db:"assistido_em"` // Year the user watched the movie
	PosterURL   string    `json:"poster_url" db:"poster_url"`     // Display URL, refreshed on every upsert
	Score       float64   `json:"score" db:"nota"`                // 0.0-10.0 in 0.5 steps
	Label       string    `json:"label" db:"classificacao"`       // Derived from Score
}

// RatingFilter selects a subset of a user's ratings.
// A nil WatchedYear matches every year and empty Labels match every label.
type RatingFilter struct {
	WatchedYear *int
	Labels      []string
	ScoreMin    float64
	ScoreMax    float64
}

// DefaultRatingFilter selects every rating.
func DefaultRatingFilter() RatingFilter {
	return RatingFilter{
		Labels:   append([]string(nil), Labels...),
		ScoreMin: MinScore,
		ScoreMax: MaxScore,
	}
}

// LabelCount is a row of the per-label aggregation.
type LabelCount struct {
	Label string `db:"classificacao"`
	Count int    `db:"qtd"`
}

// RatingSummary holds the count and mean score of a user's ratings.
type RatingSummary struct {
	Total        int     `db:"total"`
	AverageScore float64 `db:"media"`
}

// Stats aggregates a user's ratings.
type Stats struct {
	Total          int                `json:"total"`
	AverageScore   float64            `json:"average_score"`
	LabelBreakdown map[string]float64 `json:"label_breakdown"`
	Top            []RatingDB         `json:"top"`
}

// Rating event types published after ledger writes.
const (
	RatingEventTypePut    = "put"
	RatingEventTypeDelete = "delete"
)

// RatingEvent is published to Kafka whenever a rating is stored or removed.
type RatingEvent struct {
	EventType string    `json:"event_type"`
	RatingID  string    `json:"rating_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Score     float64   `json:"score,omitempty"`
	Label     string    `json:"label,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
