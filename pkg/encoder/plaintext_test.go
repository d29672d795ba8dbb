package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-exporter/internal/model"
)

func TestEncodePlainText_HeadingsAndBody(t *testing.T) {
	got := EncodePlainText(sampleContent())

	assert.True(t, strings.HasPrefix(got, "Ada Lovelace\n============\n\n"))
	assert.Contains(t, got, "Experience\n----------\n")
	assert.Contains(t, got, "1842-01 - Present")
	assert.Contains(t, got, "* Wrote Note G")
	assert.Contains(t, got, "Technical: Computation, Analysis")
	assert.NotContains(t, got, "expert")
}

func TestEncodePlainText_OmitsEmptyOptionalFragments(t *testing.T) {
	c := model.Content{
		PersonalInfo: model.PersonalInfo{FirstName: "Ada"},
		Education: []model.Education{{
			Institution: "Somewhere",
		}},
	}
	got := EncodePlainText(c)
	assert.NotContains(t, got, "GPA")
	assert.Contains(t, got, "Somewhere")

	// No certifications/links sections at all.
	assert.NotContains(t, got, "Certifications")
	assert.NotContains(t, got, "Links")
}
