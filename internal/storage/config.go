package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to the data file).
	userConfigFile = ".cbconfig.yaml"
	// envFile is an optional dotenv file in the data directory.
	envFile = ".env"

	// Environment overrides, applied after .cbconfig.yaml.
	EnvDataFile        = "CB_DATA_FILE"
	EnvDefaultCategory = "CB_DEFAULT_CATEGORY"

	// Default configuration values
	DefaultDataFile         = "contacts.dat"
	DefaultDefaultCategory  = ""
	DefaultDefaultPhoneType = "Mobile"
	DefaultDefaultEmailType = "Personal"
)

// Config represents user configuration from .cbconfig.yaml.
// This file is user-managed and never written by cb.
type Config struct {
	// DataFile is the contact file, relative to the data directory unless absolute.
	DataFile string `yaml:"data_file"`

	// DefaultCategory is used by `cb add` when --category is not given.
	DefaultCategory string `yaml:"default_category"`

	// DefaultPhoneType is used for --phone values given without a type.
	DefaultPhoneType string `yaml:"default_phone_type"`

	// DefaultEmailType is used for --email values given without a type.
	DefaultEmailType string `yaml:"default_email_type"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:         DefaultDataFile,
		DefaultCategory:  DefaultDefaultCategory,
		DefaultPhoneType: DefaultDefaultPhoneType,
		DefaultEmailType: DefaultDefaultEmailType,
	}
}

// LoadConfig loads .cbconfig.yaml if it exists, otherwise returns defaults.
// Partial config files are merged with defaults. Variables from the
// process environment, or from a .env file in the data directory, win
// over the file.
func (s *Storage) LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.ConfigPath())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
		}
	case os.IsNotExist(err):
		// No config file - keep defaults
	default:
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	env, err := s.readEnv()
	if err != nil {
		return nil, err
	}
	if v := env[EnvDataFile]; v != "" {
		cfg.DataFile = v
	}
	if v := env[EnvDefaultCategory]; v != "" {
		cfg.DefaultCategory = v
	}

	if strings.TrimSpace(cfg.DataFile) == "" {
		cfg.DataFile = DefaultDataFile
	}

	return cfg, nil
}

// readEnv merges the optional .env file with the process environment.
// Non-empty process variables take precedence, as with godotenv.Load.
func (s *Storage) readEnv() (map[string]string, error) {
	env := map[string]string{}

	path := filepath.Join(s.root, envFile)
	if _, err := os.Stat(path); err == nil {
		env, err = godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", envFile, err)
		}
	}

	for _, key := range []string{EnvDataFile, EnvDefaultCategory} {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}
	return env, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
