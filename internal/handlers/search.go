package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

// Searcher finds catalog candidates for a user.
type Searcher interface {
	Search(ctx context.Context, userID uuid.UUID, query string) []models.CandidateMovie
}

// SearchResponse lists catalog candidates
// swagger:model SearchResponse
type SearchResponse struct {
	Results []models.CandidateMovie `json:"results"`
}

// NewSearchHandler returns an HTTP handler that searches the movie catalog.
// An unreachable catalog yields an empty result list.
// @Summary Search movies
// @Description Searches the movie catalog and flags titles the caller already rated
// @Tags movies
// @Produce json
// @Param q query string true "Title to search for"
// @Success 200 {object} handlers.SearchResponse "Candidates"
// @Failure 400 {object} handlers.ErrorResponse "Empty query"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /movies/search [get]
// @Security BearerAuth
func NewSearchHandler(svc Searcher, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeError(w, http.StatusBadRequest, "Query must not be empty")
			return
		}

		results := svc.Search(r.Context(), claims.UserID, query)
		if results == nil {
			results = []models.CandidateMovie{}
		}

		writeJSON(w, http.StatusOK, SearchResponse{Results: results})
	}
}
