package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-exporter/internal/model"
)

func sampleContent() model.Content {
	return model.Content{
		PersonalInfo: model.PersonalInfo{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Location:  "London",
			Summary:   "Mathematician & first programmer (100% certified).",
		},
		Experience: []model.Experience{{
			Company:    "Analytical Engines Ltd",
			Position:   "Chief Engineer",
			StartDate:  "1842-01",
			Current:    true,
			Highlights: []string{"Wrote Note G", "Proved B&B theorem"},
		}},
		Education: []model.Education{{
			Institution: "Private Tutelage",
			Degree:      "Mathematics",
			StartDate:   "1828-01",
			EndDate:     "1835-06",
			Honors:      []string{"De Morgan's praise"},
		}},
		Skills: model.Skills{
			Technical: []model.Skill{{Name: "Computation"}, {Name: "Analysis", Level: "expert"}},
		},
		Certifications: []model.Certification{{Name: "Royal Society Note", Issuer: "RS", IssueDate: "1843-08"}},
		Links:          []model.Link{{URL: "https://www.example.com/ada", Type: model.LinkWebsite}},
	}
}

func TestEncodeLaTeX_Structure(t *testing.T) {
	got := EncodeLaTeX(sampleContent())

	assert.True(t, strings.HasPrefix(got, `\documentclass`))
	assert.True(t, strings.HasSuffix(got, "\\end{document}\n"))

	// Fixed section order.
	order := []string{`\section{Summary}`, `\section{Experience}`, `\section{Education}`, `\section{Skills}`, `\section{Certifications}`, `\section{Links}`}
	last := -1
	for _, sec := range order {
		idx := strings.Index(got, sec)
		assert.Greater(t, idx, last, "section %s out of order", sec)
		last = idx
	}

	// User text is escaped.
	assert.Contains(t, got, `Mathematician \& first programmer (100\% certified).`)
	assert.Contains(t, got, `Proved B\&B theorem`)

	// Current entry renders Present.
	assert.Contains(t, got, "1842-01 - Present")

	// Skill levels never print.
	assert.Contains(t, got, "Computation, Analysis")
	assert.NotContains(t, got, "expert")

	// Links fall back to eTLD+1 labels.
	assert.Contains(t, got, `\href{https://www.example.com/ada}{example.com}`)
}

func TestEncodeLaTeX_EmptySections(t *testing.T) {
	got := EncodeLaTeX(model.Content{PersonalInfo: model.PersonalInfo{FirstName: "Ada"}})
	assert.Contains(t, got, "Ada")
	for _, sec := range []string{"Summary", "Experience", "Education", "Skills", "Certifications", "Links"} {
		assert.NotContains(t, got, `\section{`+sec+`}`)
	}
}

func TestEncodeLaTeX_LinkURLEscaping(t *testing.T) {
	c := model.Content{
		Links: []model.Link{
			{Label: "Tracker", URL: "https://example.com/q?f=a%20b#top", Type: model.LinkOther},
			{Label: "Odd", URL: "https://example.com/{v1}/x", Type: model.LinkOther},
		},
	}
	out := EncodeLaTeX(c)

	assert.Contains(t, out, `\href{https://example.com/q?f=a\%20b\#top}{Tracker}`)
	assert.Contains(t, out, `\href{https://example.com/%7Bv1%7D/x}{Odd}`)
	// The braces delimiting the URL argument stay balanced.
	assert.NotContains(t, out, "{v1}")
}

func TestEncodeLaTeX_EntryWithHeaderOnly(t *testing.T) {
	// Entries with neither description nor highlights still render headers.
	got := EncodeLaTeX(model.Content{
		PersonalInfo: model.PersonalInfo{FirstName: "Ada"},
		Experience:   []model.Experience{{Company: "Acme", Position: "Engineer"}},
	})
	assert.Contains(t, got, `\textbf{Engineer}`)
	assert.Contains(t, got, `\textit{Acme}`)
}
