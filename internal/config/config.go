// Package config loads the optional .licenserc.toml run-control file,
// which supplies defaults that explicit CLI arguments override.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = ".licenserc.toml"

// Config holds defaults for a licenser run
type Config struct {
	License        string `toml:"license"`
	Author         string `toml:"author"`
	Year           string `toml:"year"`
	IgnoreFile     string `toml:"ignore_file"`
	NoticeTemplate string `toml:"notice_template"`
}

// Load reads the config file from dir. A missing file is not an error
// and yields an empty config.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to dir
func (c *Config) Save(dir string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, ConfigFile), data, 0644)
}
