// Package config loads and persists the Marvelous dashboard
// configuration from a YAML file, with environment overrides for
// the two service credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all dashboard configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Remote record store (Supabase / PostgREST)
	Supabase SupabaseConfig `yaml:"supabase"`

	// Generative-text service
	Gemini GeminiConfig `yaml:"gemini"`

	// Local persistence
	Storage StorageConfig `yaml:"storage"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SupabaseConfig configures the remote query service.
type SupabaseConfig struct {
	URL     string        `yaml:"url"`
	AnonKey string        `yaml:"anon_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// GeminiConfig configures the text-completion service.
type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// StorageConfig configures local persistence paths.
type StorageConfig struct {
	// PreferencesPath is the SQLite file holding UI preferences.
	PreferencesPath string `yaml:"preferences_path"`
}

// LoggingConfig controls the categorized file logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	base := filepath.Join(home, ".marvelous")
	return &Config{
		Name:    "Marvelous Manager",
		Version: "1.0.0",
		Supabase: SupabaseConfig{
			Timeout: 15 * time.Second,
		},
		Gemini: GeminiConfig{
			Model: "gemini-3-flash-preview",
		},
		Storage: StorageConfig{
			PreferencesPath: filepath.Join(base, "preferences.db"),
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".marvelous", "config.yaml")
}

// Load reads a config file, falling back to defaults for a missing
// file, and applies environment overrides last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets deployment environments inject credentials
// without touching the file on disk.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		c.Supabase.AnonKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("API_KEY"); v != "" && c.Gemini.APIKey == "" {
		c.Gemini.APIKey = v
	}
}

// Validate checks invariants that would otherwise surface as
// confusing runtime failures. A missing Supabase URL is allowed: the
// dashboard then runs entirely on fallback data.
func (c *Config) Validate() error {
	if c.Supabase.URL != "" && c.Supabase.AnonKey == "" {
		return fmt.Errorf("supabase.anon_key required when supabase.url is set")
	}
	if c.Supabase.Timeout <= 0 {
		return fmt.Errorf("supabase.timeout must be positive")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
	return nil
}

// LogLevel maps the textual level to the logging package's ints.
func (c *Config) LogLevel() int {
	switch c.Logging.Level {
	case "debug":
		return 0
	case "warn":
		return 2
	case "error":
		return 3
	default:
		return 1
	}
}
