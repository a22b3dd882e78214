package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tok := NewMockTokener(ctrl)
	svc := NewMockLogouter(ctrl)
	userID := uuid.New()

	ttlNearHour := gomock.AssignableToTypeOf(time.Duration(0))

	tests := []struct {
		name         string
		setup        func()
		expectedCode int
	}{
		{
			name: "revokes session",
			setup: func() {
				expectSession(tok, userID)
				svc.EXPECT().Logout(gomock.Any(), "jti-"+userID.String(), ttlNearHour).
					DoAndReturn(func(_ context.Context, _ string, ttl time.Duration) error {
						assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
						return nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "no session",
			setup:        func() { expectNoSession(tok) },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "revocation store down",
			setup: func() {
				expectSession(tok, userID)
				svc.EXPECT().Logout(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rr := httptest.NewRecorder()
			NewLogoutHandler(svc, tok).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
