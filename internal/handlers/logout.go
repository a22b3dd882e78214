package handlers

import (
	"context"
	"net/http"
	"time"
)

// Logouter revokes a session token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
}

// LogoutResponse represents a successful logout
// swagger:model LogoutResponse
type LogoutResponse struct {
	// default: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// @Summary User logout
// @Description Revokes the presented JWT until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session revoked"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := sessionClaims(w, r, tokener)
		if claims == nil {
			return
		}

		if err := svc.Logout(r.Context(), claims.TokenID(), claims.TTL()); err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logged out"})
	}
}
