package sqlite

import (
	"context"
	"fmt"
)

const currentVersion = 1

func (s *Store) migrate(ctx context.Context) error {
	var version int

	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(ctx); err != nil {
			return err
		}
	}

	_, err = s.db.ExecContext(
		ctx,
		fmt.Sprintf("PRAGMA user_version = %d", currentVersion),
	)

	return err
}

func (s *Store) migrateV1(ctx context.Context) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL CHECK (length(trim(title)) > 0),
		description TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT 'blue',
		icon        TEXT NOT NULL DEFAULT 'circle',
		tags        TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS presets (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL UNIQUE COLLATE NOCASE,
		work_seconds        INTEGER NOT NULL CHECK (work_seconds > 0),
		short_break_seconds INTEGER NOT NULL CHECK (short_break_seconds > 0),
		long_break_seconds  INTEGER NOT NULL CHECK (long_break_seconds > 0),
		rounds              INTEGER NOT NULL CHECK (rounds > 0),
		created_at          TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id           TEXT PRIMARY KEY,
		task_id      TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		started_at   TEXT NOT NULL,
		completed_at TEXT,
		duration     INTEGER NOT NULL DEFAULT 0,
		phase        TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		rounds       INTEGER NOT NULL DEFAULT 1,
		preset_name  TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
	CREATE INDEX IF NOT EXISTS idx_sessions_task    ON sessions(task_id);

	CREATE TABLE IF NOT EXISTS garden_plants (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		plant_type   TEXT NOT NULL,
		color        TEXT NOT NULL DEFAULT 'green',
		growth_level INTEGER NOT NULL DEFAULT 0 CHECK (growth_level BETWEEN 0 AND 5),
		water_level  INTEGER NOT NULL DEFAULT 100 CHECK (water_level BETWEEN 0 AND 100),
		water_count  INTEGER NOT NULL DEFAULT 0,
		water_needed INTEGER NOT NULL DEFAULT 3,
		created_at   TEXT NOT NULL,
		last_watered TEXT
	);
	`

	_, err := s.db.ExecContext(ctx, ddl)
	if err != nil {
		return fmt.Errorf("migrate v1: %w", err)
	}

	return nil
}
