package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-exporter/internal/domain"
)

type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

// Save upserts the job row. A nil pool (DB not configured) is a no-op so the
// export path keeps working without persistence.
func (r *ExportsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, _ := json.Marshal(j.Metadata)

	_, err := r.pool.Exec(ctx, `INSERT INTO export_jobs (id, resume_id, format, filename, media_type, status, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET format = EXCLUDED.format, filename = EXCLUDED.filename, media_type = EXCLUDED.media_type, status = EXCLUDED.status, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.ResumeID, j.Format, j.Filename, j.MediaType, j.Status, metaB, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *ExportsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if r.pool == nil {
		return nil, nil
	}

	row := r.pool.QueryRow(ctx, `SELECT id, resume_id, format, filename, media_type, status, metadata, created_at, updated_at
		FROM export_jobs WHERE id = $1`, id)

	var j domain.ExportJob
	var metaB []byte
	if err := row.Scan(&j.ID, &j.ResumeID, &j.Format, &j.Filename, &j.MediaType, &j.Status, &metaB, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	if len(metaB) > 0 {
		_ = json.Unmarshal(metaB, &j.Metadata)
	}
	return &j, nil
}
