package bunx

import "github.com/google/uuid"

// NewUUIDv7 generates a time-ordered UUIDv7 string for database primary keys.
// UUIDv7 sorts by creation time, which keeps index pages warm, and it works
// identically on PostgreSQL and SQLite (no gen_random_uuid() dependency).
//
// Generation only fails on catastrophic entropy exhaustion, in which case the
// process cannot operate safely anyway, so this panics rather than returning
// an error.
func NewUUIDv7() string {
	return uuid.Must(uuid.NewV7()).String()
}
