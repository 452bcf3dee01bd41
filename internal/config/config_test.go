package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("SKILLS_FILE", "/tmp/skills.json")
	t.Setenv("GEMINI_API_KEY", "key123")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-pro")
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")

	cfg := FromEnv()

	assert.Equal(t, "/tmp/skills.json", cfg.SkillsFile)
	assert.Equal(t, "key123", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-pro", cfg.GeminiModel)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
}

func TestFromEnv_EmptyEnvironment(t *testing.T) {
	t.Setenv("SKILLS_FILE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DATABASE_URL", "")

	cfg := FromEnv()

	assert.Equal(t, Config{}, cfg)
}

func TestValidate_MissingSkillsFile(t *testing.T) {
	cfg := Config{SkillsFile: "/nonexistent/skills.json"}

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "skills file not found")
}

func TestValidate_ExistingSkillsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`["go"]`), 0o644))

	cfg := Config{SkillsFile: path}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_NoSkillsFileConfigured(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}
