package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_InMemory(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var name string
	err = database.QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'lesson_plans'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "lesson_plans", name)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running migrations on an already-migrated database must not fail.
	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}
