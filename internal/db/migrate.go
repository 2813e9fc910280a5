package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs every schema statement in migrations, in order. ALTER TABLE
// statements that re-add an existing column are tolerated so the slice can
// be re-run against an already-migrated database.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		target_date TEXT,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','done','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS items (
		id                   TEXT PRIMARY KEY,
		goal_id              TEXT REFERENCES goals(id) ON DELETE SET NULL,
		category             TEXT NOT NULL DEFAULT '',
		title                TEXT NOT NULL,
		duration_minutes     INTEGER NOT NULL,
		deadline             TEXT,
		priority_tier        TEXT NOT NULL DEFAULT 'core'
		                     CHECK(priority_tier IN ('critical','core','backlog')),
		is_assignment        INTEGER NOT NULL DEFAULT 0,
		can_split            INTEGER NOT NULL DEFAULT 0,
		pinned_start         TEXT,
		status               TEXT NOT NULL DEFAULT 'todo'
		                     CHECK(status IN ('todo','in_progress','completed','skipped','archived')),
		recurrence_parent_id TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_goal ON items(goal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)`,

	`CREATE TABLE IF NOT EXISTS item_dependencies (
		item_id      TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		PRIMARY KEY (item_id, depends_on_id)
	)`,

	`CREATE TABLE IF NOT EXISTS occupations (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		start      TEXT NOT NULL,
		end        TEXT NOT NULL,
		location   TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_occupations_start ON occupations(start)`,

	`CREATE TABLE IF NOT EXISTS recurrence_templates (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		cadence    TEXT NOT NULL
		           CHECK(cadence IN ('daily','weekly','custom')),
		rule       TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		goal_id    TEXT REFERENCES goals(id) ON DELETE SET NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS placed_blocks (
		id               TEXT PRIMARY KEY,
		item_id          TEXT NOT NULL REFERENCES items(id) ON DELETE CASCADE,
		title            TEXT NOT NULL,
		start            TEXT NOT NULL,
		end              TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		priority_tier    TEXT NOT NULL,
		chunk_index      INTEGER NOT NULL DEFAULT 0,
		total_chunks     INTEGER NOT NULL DEFAULT 1,
		is_virtual       INTEGER NOT NULL DEFAULT 0,
		is_completed     INTEGER NOT NULL DEFAULT 0,
		generated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_placed_blocks_item ON placed_blocks(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_placed_blocks_start ON placed_blocks(start)`,
}
