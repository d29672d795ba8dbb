package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-exporter/pkg/encoder"
	"resume-exporter/pkg/raster"
	"resume-exporter/pkg/snapshot"
)

func TestUserFacingMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"preview unavailable", snapshot.ErrPreviewUnavailable,
			"Resume preview is not available. Please view the preview first."},
		{"missing snapshot", encoder.ErrMissingSnapshot,
			"No styled snapshot was captured for this resume."},
		{"empty raster", raster.ErrEmptyRaster,
			"The rendered preview was empty, nothing to export."},
		{"encoding failure", raster.ErrEncodingFailure,
			"Could not encode the rendered preview."},
		{"wrapped sentinel", fmt.Errorf("export: %w", encoder.ErrMissingSnapshot),
			"No styled snapshot was captured for this resume."},
		{"unknown", errors.New("boom"), "Export failed."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, userFacingMessage(tc.err))
		})
	}
}
