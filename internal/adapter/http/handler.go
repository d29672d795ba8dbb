package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-exporter/internal/domain"
	"resume-exporter/internal/model"
	"resume-exporter/internal/usecase"
	"resume-exporter/pkg/encoder"
	"resume-exporter/pkg/raster"
	"resume-exporter/pkg/snapshot"
)

type Handler struct {
	exporter *usecase.Exporter
	repo     *ExportJobs
}

// ExportJobs wraps the repository so the handler depends on behavior only.
type ExportJobs struct {
	Save    func(ctx context.Context, j *domain.ExportJob) error
	GetByID func(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
}

func NewHandler(e *usecase.Exporter, jobs *ExportJobs) *Handler {
	return &Handler{exporter: e, repo: jobs}
}

type exportReq struct {
	Format string                 `json:"format"`
	Resume map[string]interface{} `json:"resume"`
}

// StartExport validates the inbound resume, records a job, and runs the
// export in the background. Responds 202 with the job id.
func (h *Handler) StartExport(c *fiber.Ctx) error {
	var req exportReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	format := usecase.Format(req.Format)
	if !format.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid format"})
	}

	if err := model.ValidateMap(req.Resume); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	resume, err := decodeResume(req.Resume)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume"})
	}
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}

	job := &domain.ExportJob{
		ID:        uuid.New(),
		ResumeID:  resume.ID,
		Format:    string(format),
		MediaType: format.MediaType(),
		Status:    domain.StatusPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// persist initial job (best-effort)
	if h.repo != nil && h.repo.Save != nil {
		if err := h.repo.Save(context.Background(), job); err != nil {
			log.Printf("warning: failed to save export job: %v", err)
		}
	}

	go h.run(job, resume, format)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"jobId": job.ID.String(), "status": "started"})
}

func (h *Handler) run(job *domain.ExportJob, resume *model.Resume, format usecase.Format) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	// Prompting is a client-side concern; the server always uses defaults.
	res, err := h.exporter.Export(ctx, resume, format, usecase.ExportSettings{})
	now := time.Now()
	job.UpdatedAt = now

	switch {
	case err != nil:
		job.Status = domain.StatusFailed
		job.Metadata["error"] = err.Error()
		job.Metadata["user_facing"] = userFacingMessage(err)
		log.Printf("export job %s failed: %v", job.ID, err)
	case res.Cancelled:
		job.Status = domain.StatusCancelled
	default:
		job.Status = domain.StatusCompleted
		job.Filename = res.Filename
		job.Metadata["artifact_path"] = res.Path
		if res.Printed {
			job.Metadata["printed"] = true
		}
	}

	if h.repo != nil && h.repo.Save != nil {
		if err := h.repo.Save(ctx, job); err != nil {
			log.Printf("warning: failed to update export job: %v", err)
		}
	}
}

// GetExport returns a stored job row.
func (h *Handler) GetExport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if h.repo == nil || h.repo.GetByID == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job storage not configured"})
	}
	job, err := h.repo.GetByID(c.Context(), id)
	if err != nil || job == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(job)
}

func decodeResume(m map[string]interface{}) (*model.Resume, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var r model.Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// userFacingMessage maps terminal export errors to the messages shown to the
// user; anything else stays generic.
func userFacingMessage(err error) string {
	switch {
	case errors.Is(err, snapshot.ErrPreviewUnavailable):
		return "Resume preview is not available. Please view the preview first."
	case errors.Is(err, encoder.ErrMissingSnapshot):
		return "No styled snapshot was captured for this resume."
	case errors.Is(err, raster.ErrEmptyRaster):
		return "The rendered preview was empty, nothing to export."
	case errors.Is(err, raster.ErrEncodingFailure):
		return "Could not encode the rendered preview."
	}
	return "Export failed."
}
