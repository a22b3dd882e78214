package handlers

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"github.com/sbilibin2017/gw-movie-ledger/internal/rating"
)

// RatingLister lists the caller's ratings.
type RatingLister interface {
	List(ctx context.Context, userID uuid.UUID, filter models.RatingFilter) ([]models.RatingDB, error)
}

// RatingListResponse lists ratings
// swagger:model RatingListResponse
type RatingListResponse struct {
	Ratings []models.RatingDB `json:"ratings"`
}

// NewListRatingsHandler returns an HTTP handler that lists the caller's ratings.
// @Summary List ratings
// @Description Lists the caller's ratings, newest watched year first
// @Tags ratings
// @Produce json
// @Param watched_year query int false "Only ratings watched in this year"
// @Param label query []string false "Only these labels (repeatable or comma separated)" collectionFormat(multi)
// @Param score_min query number false "Minimum score, inclusive" default(0)
// @Param score_max query number false "Maximum score, inclusive" default(10)
// @Success 200 {object} handlers.RatingListResponse "Ratings"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Failed to load ratings"
// @Router /ratings [get]
// @Security BearerAuth
func NewListRatingsHandler(svc RatingLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		filter, msg := parseRatingFilter(r.URL.Query())
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		ratings, err := svc.List(r.Context(), claims.UserID, filter)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load ratings")
			return
		}
		if ratings == nil {
			ratings = []models.RatingDB{}
		}

		writeJSON(w, http.StatusOK, RatingListResponse{Ratings: ratings})
	}
}

// parseRatingFilter builds a filter from query parameters.
// It returns a non-empty message when a parameter is invalid.
func parseRatingFilter(q url.Values) (models.RatingFilter, string) {
	filter := models.DefaultRatingFilter()

	if v := q.Get("watched_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil || year < models.MinWatchedYear || year > models.MaxWatchedYear {
			return filter, "watched_year must be between 1900 and 2100"
		}
		filter.WatchedYear = &year
	}

	var labels []string
	for _, raw := range q["label"] {
		for _, l := range strings.Split(raw, ",") {
			l = strings.TrimSpace(l)
			if l == "" {
				continue
			}
			if !rating.IsLabel(l) {
				return filter, "unknown label: " + l
			}
			labels = append(labels, l)
		}
	}
	if len(labels) > 0 {
		filter.Labels = labels
	}

	var ok bool
	if filter.ScoreMin, ok = parseScoreBound(q.Get("score_min"), models.MinScore); !ok {
		return filter, "score_min must be between 0 and 10"
	}
	if filter.ScoreMax, ok = parseScoreBound(q.Get("score_max"), models.MaxScore); !ok {
		return filter, "score_max must be between 0 and 10"
	}
	if filter.ScoreMin > filter.ScoreMax {
		return filter, "score_min must not exceed score_max"
	}

	return filter, ""
}

func parseScoreBound(v string, def float64) (float64, bool) {
	if v == "" {
		return def, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || f < models.MinScore || f > models.MaxScore {
		return 0, false
	}
	return f, true
}
