package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gustavopk/imobcopy/internal/compose"
)

// Config holds the service tunables. Secrets (the Gemini key) and deploy
// concerns (the port) come from the environment; everything else lives in an
// optional YAML file.
type Config struct {
	Port         string `yaml:"-"`
	GeminiAPIKey string `yaml:"-"`

	Model                 string `yaml:"model"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`

	StateAbbrev  string   `yaml:"state_abbrev"`
	ContactLines []string `yaml:"contact_lines"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Port:                  "8080",
		Model:                 "gemini-2.5-flash-lite",
		RequestTimeoutSeconds: 30,
		StateAbbrev:           "MG",
		ContactLines:          compose.DefaultContactLines,
	}
}

// RequestTimeout is the bounded deadline for a single model call.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Load builds the config from defaults, the optional YAML file at path, and
// the environment, in that order. A missing file is not an error; a file set
// explicitly via IMOBCOPY_CONFIG that cannot be read is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("IMOBCOPY_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && os.Getenv("IMOBCOPY_CONFIG") == "":
			// optional default location, ignore
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY must be set")
	}

	return cfg, nil
}
