// Package config loads server configuration from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server settings. Fields left unset in the file fall back to
// the defaults; the JWT secret additionally falls back to a generated one
// at startup.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
	JWTSecret  string `yaml:"jwt_secret"`
	LogFile    string `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		DBPath:     "garrison.sqlite3",
	}
}

// Load reads a YAML config file, applying defaults for unset fields.
func Load(path string) (Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = Default().ListenAddr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default().DBPath
	}

	return cfg, nil
}
