package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportJob records one export attempt of a resume into a target format.
type ExportJob struct {
	ID        uuid.UUID              `json:"id"`
	ResumeID  uuid.UUID              `json:"resume_id"`
	Format    string                 `json:"format"`
	Filename  string                 `json:"filename"`
	MediaType string                 `json:"media_type"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Job statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)
