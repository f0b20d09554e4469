package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/billie-coop/scaler/internal/settings"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "scaler.yaml"

// Config represents the panel configuration
type Config struct {
	// Mod settings file
	SettingsPath string `yaml:"settings_path"`
	Variant      string `yaml:"variant"`

	// UI preferences
	Theme        string `yaml:"theme"`
	StartVisible bool   `yaml:"start_visible"`

	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		SettingsPath: settings.DefaultPath,
		Variant:      settings.Multipliers.Name,
		Theme:        "wuchang",
		StartVisible: true,
		LogFile:      "scaler.log",
		LogLevel:     "info",
	}
}

// Schema returns the settings layout named by Variant.
func (c *Config) Schema() (*settings.Schema, error) {
	schema, ok := settings.Schemas[c.Variant]
	if !ok {
		return nil, fmt.Errorf("unknown settings variant: %s", c.Variant)
	}
	return schema, nil
}

// Manager handles configuration loading and saving. It keeps the file's
// values as written, with $VAR references intact, and writes those back;
// Get returns them expanded.
type Manager struct {
	configPath string
	raw        *Config
	config     *Config
}

// NewManager creates a new configuration manager for the file at configPath
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		raw:        DefaultConfig(),
		config:     DefaultConfig(),
	}
}

// Path returns the location of the config file
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	if err := m.loadDotenv(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		m.raw = DefaultConfig()
		m.config = m.expand(m.raw)
		return m.Save()
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep them
	raw := DefaultConfig()
	if err := yaml.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	config := m.expand(raw)
	if _, err := config.Schema(); err != nil {
		return err
	}

	m.raw = raw
	m.config = config
	return nil
}

// Save writes the current configuration to disk, unexpanded
func (m *Manager) Save() error {
	data, err := yaml.Marshal(m.raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(m.configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration with environment references expanded
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "settings_path":
		m.raw.SettingsPath = value
	case "variant":
		if _, ok := settings.Schemas[value]; !ok {
			return fmt.Errorf("unknown settings variant: %s", value)
		}
		m.raw.Variant = value
	case "theme":
		m.raw.Theme = value
	case "start_visible":
		visible, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid start_visible value %q: %w", value, err)
		}
		m.raw.StartVisible = visible
	case "log_file":
		m.raw.LogFile = value
	case "log_level":
		m.raw.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	m.config = m.expand(m.raw)
	return m.Save()
}

// loadDotenv reads a .env file next to the config file, if there is one.
// Variables already set in the environment win.
func (m *Manager) loadDotenv() error {
	envPath := filepath.Join(filepath.Dir(m.configPath), ".env")
	if _, err := os.Stat(envPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(envPath)
}

// expand returns a copy of raw with environment variables expanded
func (m *Manager) expand(raw *Config) *Config {
	config := *raw
	config.SettingsPath = m.expandString(config.SettingsPath)
	config.LogFile = m.expandString(config.LogFile)
	config.Theme = m.expandString(config.Theme)
	return &config
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func (m *Manager) expandString(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		// Return original if env var not found
		return match
	})
}
