package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) bool
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid request"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		email := strings.TrimSpace(req.Email)
		if !validEmail(email) || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		if !svc.Register(r.Context(), email, req.Password) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
		})
	}
}

// validEmail accepts a bare address such as ana@example.com.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
