package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates the JSONB containment index used when event
// queries filter on detection_types. Kept out of the Ent schema because
// Ent cannot express GIN operators.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_detection_types_gin
		ON events USING gin (detection_types jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create detection_types GIN index: %w", err)
	}

	return nil
}

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express. These must match the definitions in the migration SQL files.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Active sessions are the hot path for fleet status and cleanup
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_active
		ON sessions (started_at)
		WHERE ended_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create active sessions index: %w", err)
	}

	return nil
}
