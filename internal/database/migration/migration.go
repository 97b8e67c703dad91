package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title       TEXT        NOT NULL CHECK (title <> ''),
  category    TEXT        NOT NULL CHECK (category IN ('engineer', 'hr', 'technician', 'employee')),
  description TEXT,
  file_name   TEXT,
  upload_date TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_category ON documents (category);`,
	},
}

// migrationLockKey serializes schema bootstrap across instances. It differs
// from the seed lock so the two transactions never wait on each other.
const migrationLockKey int64 = 2026101900

// EnsureMigrated creates the documents schema when the table is missing.
// The check and every step run in one transaction holding an advisory lock,
// so instances starting together against an empty database apply the DDL
// one after another.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	fail := func(err error, fields ...zap.Field) {
		fields = append(fields, zap.Error(err), zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		log.Error("db_migration_failed", fields...)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		fail(err)
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockKey); err != nil {
		fail(err)
		return fmt.Errorf("acquire migration lock: %w", err)
	}

	var exists bool
	query := "SELECT to_regclass('public.documents') IS NOT NULL"
	if err := tx.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		fail(err)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("reason", "schema already exists"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			fail(err, zap.String("migration_step", step.Name))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	if err := tx.Commit(); err != nil {
		fail(err)
		return fmt.Errorf("commit migration: %w", err)
	}

	log.Info("db_migration_success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
