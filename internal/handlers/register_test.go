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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	created := &models.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Score:    0,
		Solved:   []string{},
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
			inputBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123").
					Return(created, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &UserResponse{User: created},
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
			name: "email already registered",
			inputBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123").
					Return(nil, services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Email already registered",
			},
		},
		{
			name: "database not configured",
			inputBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123").
					Return(nil, repositories.ErrNotConfigured)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Database not configured",
			},
		},
		{
			name: "internal error",
			inputBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "secret123").
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

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
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

func TestRegisterHandler_PasswordVisibleInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "alice", "alice@example.com", "secret123").
		Return(&models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Password: "secret123", Solved: []string{}}, nil)

	body, _ := json.Marshal(RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	NewRegisterHandler(mockSvc).ServeHTTP(w, req)

	// The stored record, password included, is returned as-is. Known
	// limitation carried over from the original API contract.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"password":"secret123"`)
}
