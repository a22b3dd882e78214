package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"github.com/sbilibin2017/gw-movie-ledger/internal/rating"
)

// RatingSaver stores a rating for the caller.
type RatingSaver interface {
	Upsert(
		ctx context.Context,
		userID uuid.UUID,
		title string,
		year *int,
		watchedYear int,
		posterURL string,
		score float64,
	) (*models.RatingDB, error)
}

// SaveRatingRequest represents the JSON body for saving a rating
// swagger:model SaveRatingRequest
type SaveRatingRequest struct {
	// Title as returned by the movie search
	// required: true
	// default: Cidade de Deus
	Title string `json:"title"`

	// Release year, omitted when unknown
	// default: 2002
	Year *int `json:"year"`

	// Year the movie was watched, 1900-2100
	// required: true
	// default: 2024
	WatchedYear int `json:"watched_year"`

	// Poster URL from the movie search
	PosterURL string `json:"poster_url"`

	// Score from 0 to 10 in steps of 0.5
	// required: true
	// default: 9.5
	Score float64 `json:"score"`
}

// NewSaveRatingHandler returns an HTTP handler that creates or updates a rating.
// Saving the same title and year again overwrites the previous rating.
// @Summary Save rating
// @Description Labels the score and stores the rating, replacing an earlier rating of the same movie
// @Tags ratings
// @Accept json
// @Produce json
// @Param saveRatingRequest body handlers.SaveRatingRequest true "Rating"
// @Success 200 {object} models.RatingDB "Stored rating"
// @Failure 400 {object} handlers.ErrorResponse "Invalid rating"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to save rating"
// @Router /ratings [put]
// @Security BearerAuth
func NewSaveRatingHandler(svc RatingSaver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		var req SaveRatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		switch {
		case strings.TrimSpace(req.Title) == "":
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		case req.WatchedYear < models.MinWatchedYear || req.WatchedYear > models.MaxWatchedYear:
			writeError(w, http.StatusBadRequest, "Watched year must be between 1900 and 2100")
			return
		case rating.ValidateScore(req.Score) != nil:
			writeError(w, http.StatusBadRequest, rating.ErrInvalidScore.Error())
			return
		}

		saved, err := svc.Upsert(r.Context(), claims.UserID, req.Title, req.Year, req.WatchedYear, req.PosterURL, req.Score)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save rating")
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}
