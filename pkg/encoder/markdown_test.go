package encoder

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-exporter/internal/model"
)

func TestEncodeMarkdown_MinimalResume(t *testing.T) {
	c := model.Content{PersonalInfo: model.PersonalInfo{FirstName: "Ada"}}
	got := EncodeMarkdown(c)
	assert.Equal(t, "# Ada\n\n", got)
}

func TestEncodeMarkdown_CurrentEntryRendersPresent(t *testing.T) {
	c := model.Content{
		PersonalInfo: model.PersonalInfo{FirstName: "Ada"},
		Experience: []model.Experience{{
			Company:   "Analytical Engines Ltd",
			Position:  "Engineer",
			StartDate: "2021-04",
			EndDate:   "2023-09", // stale value must be ignored
			Current:   true,
		}},
	}
	got := EncodeMarkdown(c)
	assert.Contains(t, got, "2021-04 - Present")
	assert.NotContains(t, got, "2023-09")
}

func TestEncodeMarkdown_ConditionalOmission(t *testing.T) {
	c := model.Content{
		PersonalInfo: model.PersonalInfo{FirstName: "Ada"},
		Education: []model.Education{{
			Institution: "University of London",
			Degree:      "BSc",
			GPA:         "   ", // whitespace-only treated as absent
		}},
	}
	got := EncodeMarkdown(c)
	assert.NotContains(t, got, "GPA")

	c.Education[0].GPA = "3.9"
	got = EncodeMarkdown(c)
	assert.Equal(t, 1, strings.Count(got, "GPA: 3.9"))
}

func TestEncodeMarkdown_SkillShapeNormalization(t *testing.T) {
	var skills model.Skills
	require.NoError(t, json.Unmarshal([]byte(`{"technical":["Go",{"name":"Rust","level":"expert"}]}`), &skills))

	c := model.Content{
		PersonalInfo: model.PersonalInfo{FirstName: "Ada"},
		Skills:       skills,
	}
	got := EncodeMarkdown(c)
	assert.Contains(t, got, "Technical: Go, Rust")
	assert.NotContains(t, got, "expert")
}

func TestEncodeMarkdown_ExperienceFormat(t *testing.T) {
	base := model.Experience{
		Company:     "Acme",
		Position:    "Engineer",
		Description: "Did the work.",
		Highlights:  []string{"Shipped it"},
	}

	bullets := base
	bullets.Format = model.FormatBullets
	freeform := base
	freeform.Format = model.FormatFreeform

	c := model.Content{PersonalInfo: model.PersonalInfo{FirstName: "Ada"}}

	c.Experience = []model.Experience{bullets}
	got := EncodeMarkdown(c)
	assert.NotContains(t, got, "Did the work.")
	assert.Contains(t, got, "- Shipped it")

	c.Experience = []model.Experience{freeform}
	got = EncodeMarkdown(c)
	assert.Contains(t, got, "Did the work.")
	assert.NotContains(t, got, "- Shipped it")
}

func TestEncodeMarkdown_NameOrder(t *testing.T) {
	c := model.Content{PersonalInfo: model.PersonalInfo{
		FirstName: "Ada", LastName: "Lovelace", NameOrder: model.NameOrderLastFirst,
	}}
	assert.True(t, strings.HasPrefix(EncodeMarkdown(c), "# Lovelace, Ada\n"))
}
