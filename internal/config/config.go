package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/surrealwolf/high-command-mcp/internal/logging"
)

const APP_NAME = "high-command" // application name used for config directory

// DefaultBaseURL is the public HellHub Collective API root.
const DefaultBaseURL = "https://api-hellhub-collective.koyeb.app/api"

// Config holds user configuration for the high-command MCP server.
type Config struct {
	// BaseURL is the root of the HellHub Collective API.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// ClientID is sent as the X-Super-Client header on every request.
	ClientID string `yaml:"client_id"`
	// ContactEmail is sent as the X-Super-Contact header on every request.
	ContactEmail string `yaml:"contact_email"`
	// RequestsPerSecond caps the outbound request rate. Zero disables the cap.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// LogLevel overrides the logger level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	Version  string `yaml:"version"` // Track config version
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() (string, error) {
	configDir := filepath.Join(xdg.ConfigHome, APP_NAME)
	configPath := filepath.Join(configDir, "config.yaml")

	logging.Debug("Determined config path", "path", configPath)
	return configPath, nil
}

// Load loads the config from the standard location.
// A missing config file is not an error: the server is useful with pure
// defaults, so Load falls back to DefaultConfig and applies env overrides.
func Load() (*Config, error) {
	configPath, exists := FindConfigFile()
	logging.Debug("Loading config from", "path", configPath)
	if !exists {
		cfg := DefaultConfig()
		cfg.applyEnv()
		return &cfg, nil
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfigFile returns the path to an existing config file, and whether it exists.
func FindConfigFile() (string, bool) {
	primary, err := ConfigPath()
	if err != nil {
		logging.Error("Failed to get config path", "error", err)
		return "", false
	}

	if _, err := os.Stat(primary); err == nil {
		logging.Debug("Config found at primary path", "path", primary)
		return primary, true
	}

	// Return primary path for new config
	return primary, false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		TimeoutSeconds:    30,
		ClientID:          "hc.dataknife.ai",
		ContactEmail:      "lee@fullmetal.dev",
		RequestsPerSecond: 0,
		LogLevel:          "info",
		Version:           "1.0",
	}
}

// Validate checks the loaded values before they reach the client.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative, got %v", c.RequestsPerSecond)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// applyEnv layers environment overrides on top of file/default values.
// The variable names predate this implementation and are kept for
// compatibility with existing deployments.
func (c *Config) applyEnv() {
	if v := os.Getenv("HELLHUB_API_URL"); v != "" {
		c.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("X_SUPER_CLIENT"); v != "" {
		c.ClientID = v
	}
	if v := os.Getenv("X_SUPER_CONTACT"); v != "" {
		c.ContactEmail = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	configPath, _ := FindConfigFile()
	return c.SaveTo(configPath)
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600) for security
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
