package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step; its presence means the schema is current.
const sentinelTable = "public.questions"

// Both tables carry an identity column seq: it is the store-owned creation order
// used for "latest" resolution. questions.document_id is intentionally not a
// foreign key; the reference is validated by the service at write time.
var steps = []migrationStep{
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  seq          BIGINT      GENERATED ALWAYS AS IDENTITY UNIQUE,
  id           UUID        PRIMARY KEY,
  filename     TEXT        NOT NULL,
  encoding     TEXT        NOT NULL DEFAULT '',
  content_type TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size > 0),
  content      TEXT        NOT NULL CHECK (length(btrim(content)) > 0),
  storage_path TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_created_at_seq",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_at_seq ON documents (created_at DESC, seq DESC);`,
	},
	{
		Name: "create_table_questions",
		SQL: `CREATE TABLE IF NOT EXISTS questions (
  seq          BIGINT      GENERATED ALWAYS AS IDENTITY UNIQUE,
  id           UUID        PRIMARY KEY,
  document_id  UUID        NOT NULL,
  question     TEXT        NOT NULL CHECK (length(btrim(question)) > 0),
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_questions_document_seq",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_questions_document_seq ON questions (document_id, seq DESC);`,
	},
}

// EnsureMigrated checks whether the schema exists and runs the migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"component": "database",
		"db_host":   dbHost,
	})

	log.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Info("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
