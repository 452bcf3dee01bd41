// Package schemas provides JSON Schema validation for external data files.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed skills.schema.json
var skillsSchema string

// ValidationError represents a schema validation failure with per-field
// messages.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, msg := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
	}
	return sb.String()
}

// ValidateSkillVocabulary checks that data is a valid skill vocabulary
// document: a non-empty JSON array of strings.
func ValidateSkillVocabulary(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(skillsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate vocabulary: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return ve
}
