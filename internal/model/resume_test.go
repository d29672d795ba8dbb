package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		first, last string
		order       NameOrder
		want        string
	}{
		{"Ada", "Lovelace", "", "Ada Lovelace"},
		{"Ada", "Lovelace", NameOrderFirstLast, "Ada Lovelace"},
		{"Ada", "Lovelace", NameOrderLastFirst, "Lovelace, Ada"},
		{"Ada", "", NameOrderLastFirst, "Ada"},
		{"", "Lovelace", "", "Lovelace"},
		{"  ", "  ", "", ""},
	}
	for _, tc := range cases {
		p := PersonalInfo{FirstName: tc.first, LastName: tc.last, NameOrder: tc.order}
		assert.Equal(t, tc.want, p.FullName())
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "2021-04 - 2023-09", DateRange("2021-04", "2023-09", false))
	assert.Equal(t, "2021-04", DateRange("2021-04", "", false))
	assert.Equal(t, "", DateRange("", "", false))
	// current wins even when a stale end date is stored
	assert.Equal(t, "2021-04 - Present", DateRange("2021-04", "2023-09", true))
	assert.Equal(t, "Present", DateRange("", "", true))
}

func TestSkillUnmarshalBothShapes(t *testing.T) {
	var list []Skill
	require.NoError(t, json.Unmarshal([]byte(`["Go",{"name":"Rust","level":"expert"}]`), &list))
	require.Len(t, list, 2)
	assert.Equal(t, Skill{Name: "Go"}, list[0])
	assert.Equal(t, Skill{Name: "Rust", Level: "expert"}, list[1])
}

func TestSkillMarshalShape(t *testing.T) {
	out, err := json.Marshal([]Skill{{Name: "Go"}, {Name: "Rust", Level: "expert"}})
	require.NoError(t, err)
	assert.JSONEq(t, `["Go",{"name":"Rust","level":"expert"}]`, string(out))
}

func TestExperienceFormat(t *testing.T) {
	assert.True(t, Experience{}.WantsDescription())
	assert.True(t, Experience{}.WantsHighlights())
	assert.True(t, Experience{Format: FormatStructured}.WantsDescription())
	assert.True(t, Experience{Format: FormatStructured}.WantsHighlights())
	assert.False(t, Experience{Format: FormatBullets}.WantsDescription())
	assert.True(t, Experience{Format: FormatBullets}.WantsHighlights())
	assert.True(t, Experience{Format: FormatFreeform}.WantsDescription())
	assert.False(t, Experience{Format: FormatFreeform}.WantsHighlights())
}

func TestSkillsCategories(t *testing.T) {
	s := Skills{
		Technical: []Skill{{Name: "Go"}, {Name: "  "}, {Name: "Rust", Level: "expert"}},
		Soft:      []Skill{{Name: "Mentoring"}},
	}
	cats := s.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Technical", cats[0].Label)
	assert.Equal(t, "Go, Rust", cats[0].Names())
	assert.Equal(t, "Soft Skills", cats[1].Label)
	assert.Equal(t, "Mentoring", cats[1].Names())
}
