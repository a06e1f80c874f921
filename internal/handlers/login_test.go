package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
	"github.com/ctfground/ctf-backend/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	user := &models.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Score:    150,
		Solved:   []string{"c1", "c2"},
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret123").
					Return(user, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &UserResponse{User: user},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name: "wrong credentials",
			inputBody: LoginRequest{
				Email:    "alice@example.com",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrongpass").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: "Invalid credentials",
			},
		},
		{
			name: "unknown email",
			inputBody: LoginRequest{
				Email:    "nobody@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "nobody@example.com", "secret123").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ErrorResponse{
				Error: "Invalid credentials",
			},
		},
		{
			name: "database not configured",
			inputBody: LoginRequest{
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret123").
					Return(nil, repositories.ErrNotConfigured)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Database not configured",
			},
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret123").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewLoginHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &UserResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
