package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

// StatsGetter aggregates the caller's ratings.
type StatsGetter interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.Stats, error)
}

// NewStatsHandler returns an HTTP handler for rating statistics.
// @Summary Rating statistics
// @Description Total, average score, label percentages and top rated movies
// @Tags ratings
// @Produce json
// @Success 200 {object} models.Stats "Statistics"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to load ratings"
// @Router /stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		stats, err := svc.Stats(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load ratings")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
