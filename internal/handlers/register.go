package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
	"github.com/ctfground/ctf-backend/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserResponse wraps the user record returned by auth endpoints
// swagger:model UserResponse
type UserResponse struct {
	// Created or authenticated user
	User *models.User `json:"user"`
}

// ErrorResponse represents an error payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with score 0 and an empty solved set. The email must not be registered yet.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.UserResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Database not configured / internal error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{
					Error: "Email already registered",
				})
			case errors.Is(err, repositories.ErrNotConfigured):
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: "Database not configured",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}
