package handlers

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/jwt"
)

const testToken = "valid-token"

func testClaims(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        "jti-" + userID.String(),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

// expectSession makes the tokener accept testToken as userID's session.
func expectSession(tok *MockTokener, userID uuid.UUID) {
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(testToken, nil)
	tok.EXPECT().GetClaims(gomock.Any(), testToken).Return(testClaims(userID), nil)
}

func expectNoSession(tok *MockTokener) {
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
}

func expectBadSession(tok *MockTokener) {
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(testToken, nil)
	tok.EXPECT().GetClaims(gomock.Any(), testToken).Return(nil, errors.New("token is expired"))
}

func TestValidEmail(t *testing.T) {
	tests := map[string]bool{
		"ana@example.com":       true,
		"ana.silva@mail.com.br": true,
		"":                      false,
		"ana":                   false,
		"Ana <ana@example.com>": false,
		"ana@":                  false,
	}
	for email, want := range tests {
		if got := validEmail(email); got != want {
			t.Errorf("validEmail(%q) = %v, want %v", email, got, want)
		}
	}
}
