package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load reads configuration with priority ENV > YAML > env-default tags.
//
// The YAML file is taken from CONFIG_PATH, falling back to ./config.yaml.
// A missing fallback file is not an error: configuration then comes from
// the environment and defaults only. A missing CONFIG_PATH file is.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()
	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Usage writes the list of supported environment variables to w.
func Usage(w io.Writer) {
	var cfg Config
	cleanenv.FUsage(w, &cfg, nil)()
}

func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultPath, false
}
