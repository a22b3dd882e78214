package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-movie-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
)

//go:generate mockgen -destination=mock_handlers.go -package=handlers github.com/sbilibin2017/gw-movie-ledger/internal/handlers Tokener,Registerer,Loginer,Logouter,Searcher,RatingSaver,RatingLister,RatingDeleter,WatchedYearsLister,StatsGetter

// Tokener extracts the session claims from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// sessionClaims returns the caller's claims or answers 401 and returns nil.
func sessionClaims(w http.ResponseWriter, r *http.Request, tokener Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Debugw("unauthorized request: missing token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Debugw("failed to parse token claims", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	return claims
}
