package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSkillVocabulary_ValidDocument(t *testing.T) {
	err := ValidateSkillVocabulary([]byte(`["go", "python", "c++"]`))
	assert.NoError(t, err)
}

func TestValidateSkillVocabulary_EmptyArrayRejected(t *testing.T) {
	err := ValidateSkillVocabulary([]byte(`[]`))
	assert.Error(t, err)
}

func TestValidateSkillVocabulary_WrongTypeRejected(t *testing.T) {
	err := ValidateSkillVocabulary([]byte(`{"skills": ["go"]}`))

	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateSkillVocabulary_NonStringItemsRejected(t *testing.T) {
	err := ValidateSkillVocabulary([]byte(`["go", 42]`))
	assert.Error(t, err)
}

func TestValidateSkillVocabulary_EmptyStringRejected(t *testing.T) {
	err := ValidateSkillVocabulary([]byte(`["go", ""]`))
	assert.Error(t, err)
}

func TestValidateSkillVocabulary_MalformedJSON(t *testing.T) {
	err := ValidateSkillVocabulary([]byte(`[not json`))
	assert.Error(t, err)
}

func TestValidationError_MessageListsFailures(t *testing.T) {
	ve := &ValidationError{Errors: []string{"first problem", "second problem"}}

	msg := ve.Error()

	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. first problem")
	assert.Contains(t, msg, "2. second problem")
}
