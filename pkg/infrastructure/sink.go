package infrastructure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileSink persists export artifacts under a base directory: one shared
// "generated" folder keyed by the resolved filename, plus a per-resume copy
// with an opaque name.
type FileSink struct {
	BaseDir string
}

func NewFileSink(baseDir string) *FileSink {
	if baseDir == "" {
		baseDir = "resume-data"
	}
	return &FileSink{BaseDir: baseDir}
}

func (s *FileSink) Save(ctx context.Context, resumeID uuid.UUID, filename, mediaType string, data []byte) (string, error) {
	_ = mediaType // recorded by the caller's job metadata, not needed on disk

	genDir := filepath.Join(s.BaseDir, "generated")
	if err := os.MkdirAll(genDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(genDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	resumeDir := filepath.Join(s.BaseDir, "resumes", resumeID.String())
	if err := os.MkdirAll(resumeDir, 0o755); err != nil {
		return "", err
	}
	copyName := uuid.New().String() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(resumeDir, copyName), data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}
