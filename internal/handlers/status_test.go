package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ctfground/ctf-backend/internal/models"
)

func TestRootHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	NewRootHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp MessageResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "CTF Backend Running", resp.Message)
}

func TestStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatusProvider(ctrl)

	status := models.StoreStatus{
		Backend:          "✅ Running",
		Database:         "✅ Connected & Working",
		DatabaseURL:      "✅ Set",
		DatabaseName:     "✅ Set",
		ConnectionStatus: "Connected",
		Collections:      []string{"challenges", "submissions", "user_solves", "users"},
	}

	mockSvc.EXPECT().Status(gomock.Any()).Return(status)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	NewStatusHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.StoreStatus
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, status, resp)
}
