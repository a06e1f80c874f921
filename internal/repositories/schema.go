package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ctfground/ctf-backend/internal/logger"
)

// schema holds the full table set. The solved set is a relational rendering
// of the per-user solved list: the primary key on (user_id, challenge_id)
// gives set semantics, so re-adding a solve is a no-op.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	score      BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS challenges (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	category    TEXT NOT NULL,
	difficulty  TEXT NOT NULL,
	points      BIGINT NOT NULL,
	description TEXT NOT NULL,
	flag        TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS submissions (
	id           TEXT PRIMARY KEY,
	user_id      TEXT NOT NULL,
	challenge_id TEXT NOT NULL,
	flag         TEXT NOT NULL,
	correct      BOOLEAN NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS user_solves (
	user_id      TEXT NOT NULL,
	challenge_id TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, challenge_id)
);
`

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return ErrNotConfigured
	}

	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		logger.Log.Errorw("failed to ensure schema", "error", err)
		return err
	}

	logger.Log.Infow("schema ensured")
	return nil
}
