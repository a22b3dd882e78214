package models

// CandidateMovie is a catalog search hit offered to the user for rating.
type CandidateMovie struct {
	Title        string  `json:"title"`
	Year         *int    `json:"year"`
	PosterPath   *string `json:"poster_path"`
	PosterURL    string  `json:"poster_url"`
	AlreadyRated bool    `json:"already_rated"`
}
