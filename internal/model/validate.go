package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateMap validates a generic map against the resume.schema.json file.
func ValidateMap(m map[string]interface{}) error {
	dir := os.Getenv("TEMPLATES_DIR")
	if dir == "" {
		dir = "templates"
	}
	// Use absolute canonical file:// path for the schema so loaders on all
	// platforms (including Windows) resolve file references correctly.
	abs, err := filepath.Abs(filepath.Join(dir, "resume.schema.json"))
	if err != nil {
		return err
	}
	schemaPath := "file://" + filepath.ToSlash(abs)
	schemaLoader := gojsonschema.NewReferenceLoader(schemaPath)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
