package encoder

import (
	"encoding/json"

	"resume-exporter/internal/model"
)

// EncodeJSON serializes the full resume entity with stable field order and
// two-space indentation. This is the lossless reference format: parsing the
// output reconstructs a Resume deep-equal to the input.
func EncodeJSON(r *model.Resume) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
