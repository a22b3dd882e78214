package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RatingDeleter removes one of the caller's ratings.
type RatingDeleter interface {
	Delete(ctx context.Context, userID, ratingID uuid.UUID) (bool, error)
}

// DeleteRatingResponse reports whether a rating was removed
// swagger:model DeleteRatingResponse
type DeleteRatingResponse struct {
	// False when the id is unknown or belongs to another user
	Deleted bool `json:"deleted"`
}

// NewDeleteRatingHandler returns an HTTP handler that deletes a rating by id.
// @Summary Delete rating
// @Description Deletes one of the caller's ratings; other users' ratings are never touched
// @Tags ratings
// @Produce json
// @Param id path string true "Rating ID"
// @Success 200 {object} handlers.DeleteRatingResponse "Deletion result"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to delete rating"
// @Router /ratings/{id} [delete]
// @Security BearerAuth
func NewDeleteRatingHandler(svc RatingDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		ratingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid rating id")
			return
		}

		deleted, err := svc.Delete(r.Context(), claims.UserID, ratingID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to delete rating")
			return
		}

		writeJSON(w, http.StatusOK, DeleteRatingResponse{Deleted: deleted})
	}
}
