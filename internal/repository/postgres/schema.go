package postgres

import (
	"database/sql"
	"fmt"
)

// schemaStatements mirrors internal/db's SQLite migrations, adapted to
// Postgres types (native BOOLEAN/TIMESTAMPTZ/TEXT[] instead of SQLite's
// INTEGER/TEXT encodings).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		target_date TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		goal_id TEXT REFERENCES goals(id) ON DELETE SET NULL,
		category TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		deadline TIMESTAMPTZ,
		priority_tier TEXT NOT NULL DEFAULT 'core',
		is_assignment BOOLEAN NOT NULL DEFAULT FALSE,
		can_split BOOLEAN NOT NULL DEFAULT TRUE,
		pinned_start TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'todo',
		recurrence_parent_id TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS item_dependencies (
		item_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		PRIMARY KEY (item_id, depends_on_id)
	)`,
	`CREATE TABLE IF NOT EXISTS occupations (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		start TIMESTAMPTZ NOT NULL,
		"end" TIMESTAMPTZ NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		tags TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS placed_blocks (
		id TEXT PRIMARY KEY,
		item_id TEXT NOT NULL,
		title TEXT NOT NULL,
		start TIMESTAMPTZ NOT NULL,
		"end" TIMESTAMPTZ NOT NULL,
		duration_minutes INTEGER NOT NULL,
		priority_tier TEXT NOT NULL,
		chunk_index INTEGER NOT NULL,
		total_chunks INTEGER NOT NULL,
		is_virtual BOOLEAN NOT NULL DEFAULT FALSE,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		generated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_goal_id ON items(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_occupations_start ON occupations(start)`,
	`CREATE INDEX IF NOT EXISTS idx_placed_blocks_start ON placed_blocks(start)`,
}

// Migrate applies the schema, same role as internal/db.Migrate but for the
// Postgres sync backend.
func Migrate(conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("applying postgres schema: %w", err)
		}
	}
	return nil
}
