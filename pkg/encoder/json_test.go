package encoder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-exporter/internal/model"
)

func TestEncodeJSON_RoundTrip(t *testing.T) {
	orig := &model.Resume{
		ID:        uuid.New(),
		Title:     "Ada's Resume",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Content:   sampleContent(),
	}

	out, err := EncodeJSON(orig)
	require.NoError(t, err)

	var back model.Resume
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *orig, back)
}

func TestEncodeJSON_RoundTripEmptyOptionals(t *testing.T) {
	orig := &model.Resume{
		ID:      uuid.New(),
		Content: model.Content{PersonalInfo: model.PersonalInfo{FirstName: "Ada"}},
	}

	out, err := EncodeJSON(orig)
	require.NoError(t, err)

	var back model.Resume
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *orig, back)
}

func TestEncodeJSON_SkillShapePreserved(t *testing.T) {
	orig := &model.Resume{
		ID: uuid.New(),
		Content: model.Content{
			PersonalInfo: model.PersonalInfo{FirstName: "Ada"},
			Skills: model.Skills{
				Technical: []model.Skill{{Name: "Go"}, {Name: "Rust", Level: "expert"}},
			},
		},
	}

	out, err := EncodeJSON(orig)
	require.NoError(t, err)

	// Bare names serialize as plain strings, pairs as objects.
	assert.Contains(t, string(out), `"Go"`)
	assert.Contains(t, string(out), `"level": "expert"`)

	var back model.Resume
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *orig, back)
}
