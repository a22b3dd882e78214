package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// WatchedYearsLister lists the years in which the caller watched rated movies.
type WatchedYearsLister interface {
	WatchedYears(ctx context.Context, userID uuid.UUID) ([]int, error)
}

// WatchedYearsResponse lists distinct watched years, newest first
// swagger:model WatchedYearsResponse
type WatchedYearsResponse struct {
	Years []int `json:"years"`
}

// NewWatchedYearsHandler returns an HTTP handler listing the caller's watched years.
// @Summary Watched years
// @Description Distinct years in which the caller watched rated movies, for the list filter
// @Tags ratings
// @Produce json
// @Success 200 {object} handlers.WatchedYearsResponse "Years"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to load ratings"
// @Router /ratings/years [get]
// @Security BearerAuth
func NewWatchedYearsHandler(svc WatchedYearsLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		years, err := svc.WatchedYears(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load ratings")
			return
		}
		if years == nil {
			years = []int{}
		}

		writeJSON(w, http.StatusOK, WatchedYearsResponse{Years: years})
	}
}
