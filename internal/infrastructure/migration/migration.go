package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_export_jobs",
			Up:   createExportJobs,
		},
		{
			Name: "add_media_type_to_export_jobs",
			Up:   addMediaTypeToExportJobs,
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createExportJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS export_jobs (
			id UUID PRIMARY KEY,
			resume_id UUID NOT NULL,
			format TEXT NOT NULL,
			filename TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			metadata JSONB DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// addMediaTypeToExportJobs adds the media_type column if it doesn't exist.
func addMediaTypeToExportJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE export_jobs
		ADD COLUMN IF NOT EXISTS media_type TEXT NOT NULL DEFAULT '';
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the column may already exist
		slog.Warn("Error adding media_type column (may already exist)", "error", err)
	}
	return nil
}
