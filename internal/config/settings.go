package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Environment variables that override file settings.
const (
	EnvBaseURL     = "NOSPOILER_BASE_URL"
	EnvOutputDir   = "NOSPOILER_OUTPUT_DIR"
	EnvSiteBaseURL = "NOSPOILER_SITE_BASE_URL"
	EnvLogLevel    = "NOSPOILER_LOG_LEVEL"
)

// Settings holds all configuration options.
type Settings struct {
	// Remote API
	BaseURL               string `json:"base_url" toml:"base_url"`
	IndexID               string `json:"index_id" toml:"index_id"`
	UserAgent             string `json:"user_agent" toml:"user_agent"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" toml:"request_timeout_seconds"`

	// Output
	OutputDir   string `json:"output_dir" toml:"output_dir"`
	SiteBaseURL string `json:"site_base_url" toml:"site_base_url"`

	// Concurrency. MaxConcurrentYears 0 means one worker per season.
	MaxConcurrentYears  int `json:"max_concurrent_years" toml:"max_concurrent_years"`
	MaxConcurrentEvents int `json:"max_concurrent_events" toml:"max_concurrent_events"`

	// Logging: debug, info, warn, error
	LogLevel string `json:"log_level" toml:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:               "https://www.motogp.com/en/motogpapp/video",
		IndexID:               "2020",
		UserAgent:             "motogp-nospoiler",
		RequestTimeoutSeconds: 60,

		OutputDir:   "output",
		SiteBaseURL: "/",

		MaxConcurrentYears:  0,
		MaxConcurrentEvents: 4,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON or TOML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if isTOML(path) {
		if err := toml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	return settings, nil
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv loads a .env file from the working directory when present and
// overrides settings from NOSPOILER_* variables.
func (s *Settings) ApplyEnv() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		s.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		s.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSiteBaseURL)); v != "" {
		s.SiteBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = v
	}
}

// Validate checks settings for values the generator cannot work with.
func (s *Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.BaseURL) == "" {
		errs = append(errs, errors.New("base_url must not be empty"))
	}
	if strings.TrimSpace(s.IndexID) == "" {
		errs = append(errs, errors.New("index_id must not be empty"))
	}
	if strings.TrimSpace(s.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	if s.MaxConcurrentYears < 0 {
		errs = append(errs, fmt.Errorf("max_concurrent_years must be >= 0, got %d", s.MaxConcurrentYears))
	}
	if s.MaxConcurrentEvents < 1 {
		errs = append(errs, fmt.Errorf("max_concurrent_events must be >= 1, got %d", s.MaxConcurrentEvents))
	}
	if s.RequestTimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("request_timeout_seconds must be >= 0, got %d", s.RequestTimeoutSeconds))
	}
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unsupported value %q", s.LogLevel))
	}
	return errors.Join(errs...)
}

// RequestTimeout returns the per-request HTTP timeout.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// CreateSample writes a sample configuration to path. A .toml path gets the
// commented sample; any other path gets the defaults as JSON.
func CreateSample(path string) error {
	if !isTOML(path) {
		if err := DefaultSettings().Save(path); err != nil {
			return fmt.Errorf("write sample config: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
