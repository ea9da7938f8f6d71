package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	DefaultLocale string
	Strict        bool
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		Strict:        parseBool(os.Getenv("STRICT_VALIDATION")),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	return nil
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
