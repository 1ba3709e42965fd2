package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// schema describes one database and the table whose presence marks it as migrated.
type schema struct {
	Sentinel string
	Check    string
	Steps    []migrationStep
}

var postgresSchema = schema{
	Sentinel: "posts",
	Check:    "SELECT to_regclass('public.posts') IS NOT NULL",
	Steps: []migrationStep{
		{
			Name: "create_table_posts",
			SQL: `CREATE TABLE IF NOT EXISTS posts (
  id           TEXT        PRIMARY KEY,
  title        TEXT        NOT NULL,
  category     TEXT        NOT NULL DEFAULT '',
  excerpt      TEXT        NOT NULL DEFAULT '',
  content      TEXT        NOT NULL DEFAULT '',
  image        TEXT        NOT NULL DEFAULT '',
  status       TEXT        NOT NULL DEFAULT 'Draft' CHECK (status IN ('Draft', 'Published', 'Scheduled')),
  author       TEXT        NOT NULL DEFAULT 'Admin',
  scheduled_at TIMESTAMPTZ NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			Name: "create_index_posts_created_at",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at);`,
		},
		{
			Name: "create_index_posts_status_category",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_status_category ON posts (status, category);`,
		},
		{
			Name: "create_table_categories",
			SQL: `CREATE TABLE IF NOT EXISTS categories (
  id         TEXT        PRIMARY KEY,
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
		},
		{
			Name: "create_function_notify_collection_change",
			SQL: `CREATE OR REPLACE FUNCTION notify_collection_change() RETURNS trigger AS $$
BEGIN
  PERFORM pg_notify('collection_changes', TG_TABLE_NAME);
  RETURN NULL;
END;
$$ LANGUAGE plpgsql;`,
		},
		{
			Name: "create_trigger_posts_notify",
			SQL: `CREATE TRIGGER posts_notify AFTER INSERT OR UPDATE OR DELETE ON posts
  FOR EACH STATEMENT EXECUTE FUNCTION notify_collection_change();`,
		},
		{
			Name: "create_trigger_categories_notify",
			SQL: `CREATE TRIGGER categories_notify AFTER INSERT OR UPDATE OR DELETE ON categories
  FOR EACH STATEMENT EXECUTE FUNCTION notify_collection_change();`,
		},
	},
}

var settingsSchema = schema{
	Sentinel: "settings",
	Check:    "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = 'settings')",
	Steps: []migrationStep{
		{
			Name: "create_table_settings",
			SQL: `CREATE TABLE IF NOT EXISTS settings (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`,
		},
	},
}

// EnsureMigrated checks if the 'posts' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	return run(ctx, db, postgresSchema, logger.With("component", "database", "db_host", dbHost))
}

// EnsureSettings creates the SQLite settings table if it does not exist.
func EnsureSettings(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return run(ctx, db, settingsSchema, logger.With("component", "settings"))
}

func run(ctx context.Context, db *sql.DB, s schema, logger *slog.Logger) error {
	start := time.Now()
	logger.Info("db_migration_check", "status", "starting", "sentinel", s.Sentinel)

	var exists bool
	if err := db.QueryRowContext(ctx, s.Check).Scan(&exists); err != nil {
		logger.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	logger.Info("db_migration_start", "status", "in_progress")

	for _, step := range s.Steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logger.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	logger.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
