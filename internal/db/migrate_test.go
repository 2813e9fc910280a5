package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestMigrate_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, Migrate(conn))
	require.NoError(t, Migrate(conn))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	conn := openTestDB(t)

	expected := []string{"goals", "items", "item_dependencies", "occupations", "recurrence_templates", "placed_blocks"}
	for _, table := range expected {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenDB_EnablesForeignKeys(t *testing.T) {
	conn := openTestDB(t)

	var fkEnabled int
	require.NoError(t, conn.QueryRow(`PRAGMA foreign_keys`).Scan(&fkEnabled))
	assert.Equal(t, 1, fkEnabled)
}
