package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-ledger/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: LoginRequest{Email: "ana@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ana@example.com", "pass123").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{Token: "JWT_TOKEN"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "invalid request body"},
		},
		{
			name:      "wrong credentials",
			inputBody: LoginRequest{Email: "ghost@example.com", Password: "wrongpass"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "wrongpass").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{Error: "Invalid email or password"},
		},
		{
			name:      "internal server error",
			inputBody: LoginRequest{Email: "ana@example.com", Password: "pass123"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ana@example.com", "pass123").
					Return("", errors.New("signing failed"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body []byte
			switch v := tt.inputBody.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			switch expected := tt.expectedBody.(type) {
			case *LoginResponse:
				var resp LoginResponse
				_ = json.NewDecoder(rr.Body).Decode(&resp)
				assert.Equal(t, expected.Token, resp.Token)
			case *ErrorResponse:
				var resp ErrorResponse
				_ = json.NewDecoder(rr.Body).Decode(&resp)
				assert.Equal(t, expected.Error, resp.Error)
			}
		})
	}
}
