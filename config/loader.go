package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration. It is set once by
// LoadAppConfig and treated as read-only afterwards.
var Config AppConfig

// SearchPaths are tried in order when no explicit config path is given.
var SearchPaths = []string{"config.yml", "./bikeshare/config.yml"}

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist; otherwise SearchPaths are tried and the
// defaults are used when none of them exists.
func LoadAppConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads, validates and defaults a configuration without publishing it.
func Load(path string) (AppConfig, error) {
	data, err := readConfig(path)
	if err != nil {
		return AppConfig{}, err
	}
	if data == nil {
		return Default(), nil
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, validates them and fills defaults.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("validate config: %w", err)
	}
	seen := map[string]bool{}
	for _, c := range cfg.Cities {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if seen[key] {
			return AppConfig{}, fmt.Errorf("validate config: duplicate city %q", c.Name)
		}
		seen[key] = true
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func readConfig(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		return data, nil
	}
	for _, p := range SearchPaths {
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	}
	return nil, nil
}
