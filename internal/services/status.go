package services

import (
	"context"
	"errors"

	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
)

// StatusReader probes store connectivity.
type StatusReader interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context, limit int) ([]string, error)
}

// StatusService assembles the diagnostic payload for GET /test. The response
// keys and checkmark strings are part of the observable surface; deployment
// checks parse them.
type StatusService struct {
	store   StatusReader
	urlSet  bool
	nameSet bool
}

// NewStatusService creates a StatusService. urlSet and nameSet report whether
// DATABASE_URL and DATABASE_NAME were present in the environment.
func NewStatusService(store StatusReader, urlSet, nameSet bool) *StatusService {
	return &StatusService{
		store:   store,
		urlSet:  urlSet,
		nameSet: nameSet,
	}
}

// Status returns the current store diagnostics. It never fails; problems are
// reported inside the payload.
func (svc *StatusService) Status(ctx context.Context) models.StoreStatus {
	status := models.StoreStatus{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	err := svc.store.Ping(ctx)
	switch {
	case errors.Is(err, repositories.ErrNotConfigured):
		status.Database = "⚠️  Available but not initialized"
	case err != nil:
		status.ConnectionStatus = "Connected"
		status.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
	default:
		status.ConnectionStatus = "Connected"
		status.Database = "✅ Available"

		collections, err := svc.store.Collections(ctx, 10)
		if err != nil {
			status.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			status.Collections = collections
			status.Database = "✅ Connected & Working"
		}
	}

	status.DatabaseURL = setFlag(svc.urlSet)
	status.DatabaseName = setFlag(svc.nameSet)

	return status
}

func setFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
