package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ctfground/ctf-backend/internal/logger"
)

// StatusRepository answers store connectivity probes for the diagnostic
// endpoint.
type StatusRepository struct {
	db *sqlx.DB
}

func NewStatusRepository(db *sqlx.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Ping verifies the store connection.
func (r *StatusRepository) Ping(ctx context.Context) error {
	if r.db == nil {
		return ErrNotConfigured
	}
	return r.db.PingContext(ctx)
}

// Collections lists up to limit public table names.
func (r *StatusRepository) Collections(ctx context.Context, limit int) ([]string, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	const query = `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
		ORDER BY tablename
		LIMIT $1
	`

	tables := []string{}
	err := r.db.SelectContext(ctx, &tables, query, limit)
	if err != nil {
		logger.Log.Errorw("failed to list tables", "error", err)
		return nil, err
	}

	return tables, nil
}
