package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"typeahead/internal/eventbus"
)

// ErrInvalid is wrapped by Validate errors
var ErrInvalid = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	Placeholder string         `toml:"placeholder"`
	Input       InputSettings  `toml:"input"`
	Source      SourceSettings `toml:"source"`
	Log         LogSettings    `toml:"log"`
}

// InputSettings configures the widget
type InputSettings struct {
	Width           int `toml:"width"`
	MaxVisible      int `toml:"max_visible"`
	DebounceMs      int `toml:"debounce_ms"`
	LookupTimeoutMs int `toml:"lookup_timeout_ms"` // 0 disables the timeout
}

// SourceSettings selects and tunes the suggestion source
type SourceSettings struct {
	Kind       string `toml:"kind"`       // static, prefix or fuzzy
	Dictionary string `toml:"dictionary"` // empty uses the built-in words
	LatencyMs  int    `toml:"latency_ms"`
	MaxResults int    `toml:"max_results"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Debounce returns the debounce delay
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Input.DebounceMs) * time.Millisecond
}

// LookupTimeout returns the per-lookup timeout
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.Input.LookupTimeoutMs) * time.Millisecond
}

// Latency returns the simulated source latency
func (c *Config) Latency() time.Duration {
	return time.Duration(c.Source.LatencyMs) * time.Millisecond
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case "static", "prefix", "fuzzy":
	default:
		return fmt.Errorf("%w: unknown source kind %q", ErrInvalid, c.Source.Kind)
	}
	if c.Input.Width < 10 {
		return fmt.Errorf("%w: input width must be at least 10, got %d", ErrInvalid, c.Input.Width)
	}
	if c.Input.MaxVisible < 1 {
		return fmt.Errorf("%w: max_visible must be positive, got %d", ErrInvalid, c.Input.MaxVisible)
	}
	if c.Input.DebounceMs < 1 {
		return fmt.Errorf("%w: debounce_ms must be at least 1, got %d", ErrInvalid, c.Input.DebounceMs)
	}
	if c.Input.LookupTimeoutMs < 0 || c.Source.LatencyMs < 0 || c.Source.MaxResults < 0 {
		return fmt.Errorf("%w: durations and limits must not be negative", ErrInvalid)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	LoadOrCreate(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "typeahead", "config.toml")
}

// NewConfigService creates a config service for path, or the default
// location when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadOrCreate loads path, writing the defaults there first if it does
// not exist yet
func (cs *configService) LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, path); err != nil {
			return nil, err
		}
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cfg)
	return cfg, nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			SourceKind: cfg.Source.Kind,
		})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Placeholder: "Type to search...",
		Input: InputSettings{
			Width:           48,
			MaxVisible:      7,
			DebounceMs:      300,
			LookupTimeoutMs: 5000,
		},
		Source: SourceSettings{
			Kind:       "static",
			LatencyMs:  300,
			MaxResults: 50,
		},
		Log: LogSettings{
			Level: "info",
			File:  "typeahead.log",
		},
	}
}
