package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-exporter/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
}

func resumeWithName(first, last, title string) *model.Resume {
	return &model.Resume{
		Title: title,
		Content: model.Content{
			PersonalInfo: model.PersonalInfo{FirstName: first, LastName: last},
		},
	}
}

type fakePrompter struct {
	value      string
	cancelled  bool
	suggestion string
	calls      int
}

func (f *fakePrompter) Prompt(suggestion string) (string, bool, error) {
	f.calls++
	f.suggestion = suggestion
	return f.value, f.cancelled, nil
}

func TestResolve_DefaultFromName(t *testing.T) {
	r := &FilenameResolver{Now: fixedClock}
	name, cancelled, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "pdf", ExportSettings{})
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, "Ada_Lovelace_Resume_2026-08-31.pdf", name)
}

func TestResolve_SingleNamePart(t *testing.T) {
	r := &FilenameResolver{Now: fixedClock}
	name, _, err := r.Resolve(resumeWithName("Ada", "", ""), "md", ExportSettings{})
	require.NoError(t, err)
	assert.Equal(t, "Ada_Resume_2026-08-31.md", name)
}

func TestResolve_FallsBackToTitle(t *testing.T) {
	r := &FilenameResolver{Now: fixedClock}

	name, _, err := r.Resolve(resumeWithName("", "", "Staff SWE (2026)"), "tex", ExportSettings{})
	require.NoError(t, err)
	assert.Equal(t, "Staff_SWE_2026_2026-08-31.tex", name)

	name, _, err = r.Resolve(resumeWithName("", "", ""), "tex", ExportSettings{})
	require.NoError(t, err)
	assert.Equal(t, "Resume_2026-08-31.tex", name)
}

func TestResolve_Deterministic(t *testing.T) {
	r := &FilenameResolver{Now: fixedClock}
	first, _, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "json", ExportSettings{})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "json", ExportSettings{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Regexp(t, `^[A-Za-z0-9_.-]+$`, first)
}

func TestResolve_PromptAccepted(t *testing.T) {
	p := &fakePrompter{value: "my resume v2"}
	r := &FilenameResolver{Now: fixedClock, Prompter: p}

	name, cancelled, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "pdf", ExportSettings{PromptExportFilename: true})
	require.NoError(t, err)
	assert.False(t, cancelled)
	// Suggestion carries no extension.
	assert.Equal(t, "Ada_Lovelace_Resume_2026-08-31", p.suggestion)
	assert.Equal(t, "my_resume_v2.pdf", name)
}

func TestResolve_PromptEmptyFallsBack(t *testing.T) {
	p := &fakePrompter{value: "   "}
	r := &FilenameResolver{Now: fixedClock, Prompter: p}

	name, cancelled, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "pdf", ExportSettings{PromptExportFilename: true})
	require.NoError(t, err)
	assert.False(t, cancelled)
	assert.Equal(t, "Ada_Lovelace_Resume_2026-08-31.pdf", name)
}

func TestResolve_PromptCancelled(t *testing.T) {
	p := &fakePrompter{cancelled: true}
	r := &FilenameResolver{Now: fixedClock, Prompter: p}

	name, cancelled, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "pdf", ExportSettings{PromptExportFilename: true})
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Empty(t, name)
}

func TestResolve_PromptDisabledNeverPrompts(t *testing.T) {
	p := &fakePrompter{value: "ignored"}
	r := &FilenameResolver{Now: fixedClock, Prompter: p}

	_, _, err := r.Resolve(resumeWithName("Ada", "Lovelace", ""), "pdf", ExportSettings{})
	require.NoError(t, err)
	assert.Zero(t, p.calls)
}
