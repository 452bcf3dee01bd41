package extraction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary_LowercasesAndDeduplicates(t *testing.T) {
	v := NewVocabulary([]string{"Go", "go", " Python ", "python"})

	assert.Equal(t, []string{"go", "python"}, v.Terms())
	assert.True(t, v.Contains("go"))
	assert.False(t, v.Contains("Go"))
	assert.Equal(t, 2, v.Len())
}

func TestNewVocabulary_EmptyInputFallsBackToDefault(t *testing.T) {
	v := NewVocabulary(nil)

	assert.Greater(t, v.Len(), 50)
	assert.True(t, v.Contains("python"))
	assert.True(t, v.Contains("kubernetes"))
}

func TestNewVocabulary_BlankEntriesSkipped(t *testing.T) {
	v := NewVocabulary([]string{"go", "  ", ""})

	assert.Equal(t, []string{"go"}, v.Terms())
}

func TestDefaultVocabulary_ContainsCoreTerms(t *testing.T) {
	v := DefaultVocabulary()

	for _, term := range []string{"python", "java", "c++", "node.js", "machine learning", "aws", "docker"} {
		assert.True(t, v.Contains(term), "expected %q in default vocabulary", term)
	}
}

func TestLoadVocabulary_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Go", "Rust", "zig"]`), 0o644))

	v, err := LoadVocabulary(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust", "zig"}, v.Terms())
}

func TestLoadVocabulary_MissingFileFallsBack(t *testing.T) {
	v, err := LoadVocabulary("/nonexistent/skills.json")

	assert.Error(t, err)
	require.NotNil(t, v)
	assert.True(t, v.Contains("python"))
}

func TestLoadVocabulary_InvalidDocumentFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": ["go"]}`), 0o644))

	v, err := LoadVocabulary(path)

	assert.Error(t, err)
	require.NotNil(t, v)
	assert.True(t, v.Contains("python"))
}

func TestLoadVocabulary_EmptyArrayFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	v, err := LoadVocabulary(path)

	assert.Error(t, err)
	require.NotNil(t, v)
	assert.True(t, v.Contains("python"))
}
