// Package config loads server settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

// Config holds the server configuration.
//
// Empty sheet and ledger URLs are valid: they mean the source is not
// configured and the matching feature falls back or reports so.
type Config struct {
	Port       int    `yaml:"port"`
	StaticPath string `yaml:"static_path"`

	// ScheduleURL and CandidatesURL are published CSV (or XLSX) links.
	ScheduleURL   string `yaml:"schedule_csv_url"`
	CandidatesURL string `yaml:"candidates_csv_url"`

	// LedgerURL is a remote ledger endpoint. Empty means the ledger lives in
	// Store and is also served at /ledger.
	LedgerURL string `yaml:"ledger_url"`

	Store    string `yaml:"store"`
	DBPath   string `yaml:"db_path"`
	MongoURI string `yaml:"mongo_uri"`
	MongoDB  string `yaml:"mongo_db"`

	// PasscodeHash is a bcrypt hash of the shared trip passcode. Empty
	// disables login.
	PasscodeHash string        `yaml:"passcode_hash"`
	JWTSecret    string        `yaml:"jwt_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Port:        8080,
		StaticPath:  "./static",
		Store:       StoreSQLite,
		DBPath:      "./data/tripboard.db",
		MongoDB:     "tripboard",
		TokenTTL:    7 * 24 * time.Hour,
		HTTPTimeout: 15 * time.Second,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads path (if not empty) and then applies environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.Getenv)
}

// LoadWithEnv is Load with a custom environment lookup.
func LoadWithEnv(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	str("STATIC_PATH", &cfg.StaticPath)
	str("SCHEDULE_CSV_URL", &cfg.ScheduleURL)
	str("CANDIDATES_CSV_URL", &cfg.CandidatesURL)
	str("LEDGER_URL", &cfg.LedgerURL)
	str("STORE", &cfg.Store)
	str("DB_PATH", &cfg.DBPath)
	str("MONGO_URI", &cfg.MongoURI)
	str("MONGO_DB", &cfg.MongoDB)
	str("TRIP_PASSCODE_HASH", &cfg.PasscodeHash)
	str("JWT_SECRET", &cfg.JWTSecret)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	for key, dst := range map[string]*time.Duration{
		"HTTP_TIMEOUT": &cfg.HTTPTimeout,
		"TOKEN_TTL":    &cfg.TokenTTL,
	} {
		if v := getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", key, v, err)
			}
			*dst = d
		}
	}
	return nil
}

// AuthEnabled reports whether a trip passcode is configured.
func (c *Config) AuthEnabled() bool {
	return c.PasscodeHash != ""
}

// Validate checks the combination of settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			errs = append(errs, errors.New("db_path is required for the sqlite store"))
		}
	case StoreMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("mongo_uri is required for the mongo store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store %q", c.Store))
	}
	if c.AuthEnabled() && c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt_secret is required when a passcode hash is set"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("http_timeout must be positive"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token_ttl must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
