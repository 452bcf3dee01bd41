// Package config provides configuration loading and validation for the
// resume analyzer. All values are resolved once at startup and passed
// explicitly into the components that need them; nothing reads ambient
// state after construction.
package config

import (
	"fmt"
	"os"
)

// Config holds the application configuration. Every field is optional
// except where a command states otherwise: the analysis pipeline runs
// fully featured with the zero value, with the AI advisor disabled and
// the built-in skill vocabulary.
type Config struct {
	// SkillsFile is the path to an external skill vocabulary override
	// (JSON array of lowercase strings). Empty selects the built-in list.
	SkillsFile string

	// GeminiAPIKey enables the AI suggestion advisor. Empty disables the
	// feature without error.
	GeminiAPIKey string
	// GeminiModel overrides the advisor's model name.
	GeminiModel string

	// DatabaseURL is the PostgreSQL connection URL, required by `serve`.
	DatabaseURL string
}

// FromEnv builds a Config from environment variables. Callers load .env
// files (godotenv) before calling this.
func FromEnv() Config {
	return Config{
		SkillsFile:   os.Getenv("SKILLS_FILE"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
}

// Validate checks values that can be verified without touching the
// network: the skills file must exist when configured.
func (c *Config) Validate() error {
	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsFile)
		}
	}
	return nil
}
