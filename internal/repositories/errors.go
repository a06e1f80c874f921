package repositories

import "errors"

// ErrNotConfigured is returned by every repository method when the backing
// store handle is nil. The process starts without a database when
// DATABASE_URL is unset or unreachable, and data endpoints must then fail
// with a 500 "Database not configured" instead of crashing the service.
var ErrNotConfigured = errors.New("database not configured")
