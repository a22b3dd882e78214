package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-movie-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
)

//go:generate mockgen -destination=mock_middlewares.go -package=middlewares github.com/sbilibin2017/gw-movie-ledger/internal/middlewares Tokener,RevocationChecker

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware returns a middleware that rejects requests without a valid, unrevoked JWT.
func AuthMiddleware(tokener Tokener, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				unauthorized(w)
				return
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(ctx, claims.TokenID())
				if err != nil {
					// Fail closed.
					logger.Log.Errorw("failed to check token revocation", "token_id", claims.TokenID(), "err", err)
					unauthorized(w)
					return
				}
				if isRevoked {
					logger.Log.Debugw("revoked token presented", "token_id", claims.TokenID())
					unauthorized(w)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
}
