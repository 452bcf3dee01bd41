package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_CarriageReturns(t *testing.T) {
	result := NormalizeText("John Doe\r\nSoftware Engineer")
	assert.Equal(t, "John Doe\n\nSoftware Engineer", result)
}

func TestNormalizeText_CollapsesSpacesAndTabs(t *testing.T) {
	result := NormalizeText("John    Doe\tSoftware\t\tEngineer")
	assert.Equal(t, "John Doe Software Engineer", result)
}

func TestNormalizeText_CollapsesExcessiveNewlines(t *testing.T) {
	result := NormalizeText("Experience\n\n\n\n\nEducation")
	assert.Equal(t, "Experience\n\nEducation", result)
}

func TestNormalizeText_PreservesDoubleNewlines(t *testing.T) {
	result := NormalizeText("Experience\n\nEducation")
	assert.Equal(t, "Experience\n\nEducation", result)
}

func TestNormalizeText_TrimsResult(t *testing.T) {
	result := NormalizeText("  \n John Doe \n  ")
	assert.Equal(t, "John Doe", result)
}

func TestNormalizeText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("   \n\t\n  "))
}

func TestNormalizeText_Idempotent(t *testing.T) {
	once := NormalizeText("John  Doe\r\n\r\n\r\nEngineer")
	twice := NormalizeText(once)
	assert.Equal(t, once, twice)
}
