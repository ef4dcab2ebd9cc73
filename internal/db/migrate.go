package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are idempotent schema statements, re-run on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS lesson_plans (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL,
		subject         TEXT NOT NULL,
		goals_json      TEXT NOT NULL DEFAULT '[]',
		activities_json TEXT NOT NULL DEFAULT '[]',
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lesson_plans_subject ON lesson_plans(subject)`,
	`CREATE INDEX IF NOT EXISTS idx_lesson_plans_updated ON lesson_plans(updated_at)`,
}

// Migrate runs all schema migrations.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
