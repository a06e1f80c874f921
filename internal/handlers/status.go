package handlers

import (
	"context"
	"net/http"

	"github.com/ctfground/ctf-backend/internal/models"
)

// StatusProvider defines the interface that the diagnostics service must
// implement.
type StatusProvider interface {
	Status(ctx context.Context) models.StoreStatus
}

// MessageResponse is the root endpoint payload
// swagger:model MessageResponse
type MessageResponse struct {
	// default: CTF Backend Running
	Message string `json:"message"`
}

// NewRootHandler returns the liveness banner handler.
// @Summary Service banner
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "CTF Backend Running"})
	}
}

// NewStatusHandler returns the store diagnostics handler.
// @Summary Store diagnostics
// @Description Reports store connectivity, configuration flags, and visible collections.
// @Tags stats
// @Produce json
// @Success 200 {object} models.StoreStatus
// @Router /test [get]
func NewStatusHandler(svc StatusProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status(r.Context()))
	}
}
