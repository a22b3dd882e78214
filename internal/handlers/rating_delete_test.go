package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func deleteRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/ratings/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteRatingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tok := NewMockTokener(ctrl)
	svc := NewMockRatingDeleter(ctrl)
	userID := uuid.New()
	ratingID := uuid.New()

	tests := []struct {
		name         string
		id           string
		setup        func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "own rating",
			id:   ratingID.String(),
			setup: func() {
				expectSession(tok, userID)
				svc.EXPECT().Delete(gomock.Any(), userID, ratingID).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"deleted":true}`,
		},
		{
			name: "foreign or missing rating",
			id:   ratingID.String(),
			setup: func() {
				expectSession(tok, userID)
				svc.EXPECT().Delete(gomock.Any(), userID, ratingID).Return(false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"deleted":false}`,
		},
		{
			name:         "malformed id",
			id:           "42",
			setup:        func() { expectSession(tok, userID) },
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid rating id"}`,
		},
		{
			name: "ledger unavailable",
			id:   ratingID.String(),
			setup: func() {
				expectSession(tok, userID)
				svc.EXPECT().Delete(gomock.Any(), userID, ratingID).Return(false, services.ErrLedgerUnavailable)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Failed to delete rating"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rr := httptest.NewRecorder()
			NewDeleteRatingHandler(svc, tok).ServeHTTP(rr, deleteRequest(tt.id))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
