package utils

import (
	"errors"
	"fmt"
	"os"

	"message-dispatch/models"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when present and no --config flag is given
const DefaultConfigFile = "dispatch.yaml"

// LoadConfig layers defaults, the YAML file, .env and the environment.
// A missing file is only an error when required is true.
func LoadConfig(path string, required bool) (models.Config, error) {
	cfg := models.DefaultConfig

	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// .env is optional; real environment variables still win over it
	_ = godotenv.Load()

	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// MarshalConfig renders cfg the way it would be written to dispatch.yaml
func MarshalConfig(cfg models.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
