package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
	"github.com/ctfground/ctf-backend/internal/services"
)

func TestListChallengesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChallengeProvider(ctrl)

	challenges := []models.Challenge{
		{ID: "c1", Title: "Warmup: Hello Flag", Category: "Misc", Difficulty: models.DifficultyEasy, Points: 50},
		{ID: "c2", Title: "Crypto: Caesar Shift", Category: "Crypto", Difficulty: models.DifficultyEasy, Points: 100},
	}

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any()).Return(challenges, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ChallengeListResponse{Challenges: challenges},
		},
		{
			name: "database not configured",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any()).Return(nil, repositories.ErrNotConfigured)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Database not configured"},
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/challenges", nil)
			w := httptest.NewRecorder()

			handler := NewListChallengesHandler(mockSvc)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ChallengeListResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}

func TestGetChallengeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockChallengeProvider(ctrl)

	challenge := &models.Challenge{
		ID:          "c1",
		Title:       "Web: Cookie Monster",
		Category:    "Web",
		Difficulty:  models.DifficultyMedium,
		Points:      200,
		Description: "Baca cookie dengan benar untuk mendapatkan flag.",
	}

	tests := []struct {
		name         string
		challengeID  string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:        "success",
			challengeID: "c1",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), "c1").Return(challenge, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ChallengeResponse{Challenge: challenge},
		},
		{
			name:        "not found",
			challengeID: "missing",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), "missing").Return(nil, services.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: &ErrorResponse{Error: "Not found"},
		},
		{
			name:        "database not configured",
			challengeID: "c1",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), "c1").Return(nil, repositories.ErrNotConfigured)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Database not configured"},
		},
		{
			name:        "internal error",
			challengeID: "c1",
			mockSetup: func() {
				mockSvc.EXPECT().Get(gomock.Any(), "c1").Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			router := chi.NewRouter()
			router.Get("/challenges/{challengeID}", NewGetChallengeHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/challenges/"+tt.challengeID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ChallengeResponse{}
			default:
				respBody = &ErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
