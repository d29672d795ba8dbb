package usecase

import (
	"strings"
	"time"

	"resume-exporter/internal/model"
	"resume-exporter/pkg/encoder"
)

// ExportSettings is read-only configuration supplied by the settings store.
type ExportSettings struct {
	// PromptExportFilename makes the resolver block for interactive input.
	PromptExportFilename bool
}

// FilenamePrompter presents a suggested filename (without extension) to the
// user. cancelled=true aborts the whole export; an empty submission falls
// back to the suggestion.
type FilenamePrompter interface {
	Prompt(suggestion string) (value string, cancelled bool, err error)
}

// FilenameResolver derives the export filename from resume identity and the
// current date, optionally routed through an interactive prompt.
type FilenameResolver struct {
	Prompter FilenamePrompter
	Now      func() time.Time
}

func NewFilenameResolver(prompter FilenamePrompter) *FilenameResolver {
	return &FilenameResolver{Prompter: prompter, Now: time.Now}
}

// Resolve returns the final filename, or cancelled=true when the user backed
// out of the prompt. Cancellation is a result, never an error.
func (r *FilenameResolver) Resolve(resume *model.Resume, extension string, settings ExportSettings) (filename string, cancelled bool, err error) {
	base := r.defaultBase(resume)

	if !settings.PromptExportFilename || r.Prompter == nil {
		return base + "." + extension, false, nil
	}

	value, cancelled, err := r.Prompter.Prompt(base)
	if err != nil {
		return "", false, err
	}
	if cancelled {
		return "", true, nil
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = base
	}
	return encoder.SanitizeFilename(value) + "." + extension, false, nil
}

// defaultBase computes the filename stem: "{first}_{last}_Resume_{date}"
// when a name is present, otherwise the resume title (or "Resume") with the
// date. Sanitization applies to the stem only.
func (r *FilenameResolver) defaultBase(resume *model.Resume) string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	date := now().Format("2006-01-02")

	first := strings.TrimSpace(resume.Content.PersonalInfo.FirstName)
	last := strings.TrimSpace(resume.Content.PersonalInfo.LastName)

	var stem string
	if first != "" || last != "" {
		parts := make([]string, 0, 4)
		if first != "" {
			parts = append(parts, first)
		}
		if last != "" {
			parts = append(parts, last)
		}
		parts = append(parts, "Resume", date)
		stem = strings.Join(parts, "_")
	} else {
		title := strings.TrimSpace(resume.Title)
		if title == "" {
			title = "Resume"
		}
		stem = title + "_" + date
	}
	return encoder.SanitizeFilename(stem)
}
