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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by exact email and password match and returns the user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.UserResponse "Authenticated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Database not configured / internal error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{
					Error: "Invalid credentials",
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
