package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"shopgrip/internal/domain"
)

// FileName is the default config file name inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version          int               `toml:"version" yaml:"version"`
	Endpoint         string            `toml:"endpoint" yaml:"endpoint"`                     // storefront base URL
	SearchPath       string            `toml:"search_path" yaml:"search_path"`               // predictive search API path
	SearchPagePath   string            `toml:"search_page_path" yaml:"search_page_path"`     // full results page
	Limit            int               `toml:"limit" yaml:"limit"`                           // results per category
	DebounceMs       int               `toml:"debounce_ms" yaml:"debounce_ms"`
	LoaderDelayMs    int               `toml:"loader_delay_ms" yaml:"loader_delay_ms"`
	RequestTimeoutMs int               `toml:"request_timeout_ms" yaml:"request_timeout_ms"`
	CartID           string            `toml:"cart_id,omitempty" yaml:"cart_id,omitempty"`
	LogFile          string            `toml:"log_file,omitempty" yaml:"log_file,omitempty"`
	Menu             []domain.MenuItem `toml:"menu,omitempty" yaml:"menu,omitempty"`
	UISettings       UISettings        `toml:"ui" yaml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPrices bool `toml:"show_prices" yaml:"show_prices"`
	ShowImages bool `toml:"show_images" yaml:"show_images"`
}

// Debounce returns the quiescence window for committing a query
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// LoaderDelay returns the grace period before the loading indicator appears
func (c *Config) LoaderDelay() time.Duration {
	return time.Duration(c.LoaderDelayMs) * time.Millisecond
}

// RequestTimeout returns the upper bound of one search request
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// Validate checks that the configuration can drive a search session
func (c *Config) Validate() error {
	var errs []error
	if c.Endpoint == "" {
		errs = append(errs, errors.New("endpoint is required"))
	} else if u, err := url.Parse(c.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("endpoint %q is not an absolute URL", c.Endpoint))
	}
	if c.Limit <= 0 {
		errs = append(errs, fmt.Errorf("limit must be positive, got %d", c.Limit))
	}
	if c.DebounceMs <= 0 {
		errs = append(errs, fmt.Errorf("debounce_ms must be positive, got %d", c.DebounceMs))
	}
	if c.LoaderDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("loader_delay_ms must be positive, got %d", c.LoaderDelayMs))
	}
	if c.RequestTimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout_ms must be positive, got %d", c.RequestTimeoutMs))
	}
	if !strings.HasPrefix(c.SearchPagePath, "/") {
		errs = append(errs, fmt.Errorf("search_page_path must start with '/', got %q", c.SearchPagePath))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "shopgrip", FileName)
}

// NewConfigService creates a config service bound to path (DefaultPath when empty)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when missing
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:          1,
		Endpoint:         "http://127.0.0.1:8787",
		SearchPath:       "/api/predictive-search",
		SearchPagePath:   "/search",
		Limit:            5,
		DebounceMs:       250,
		LoaderDelayMs:    300,
		RequestTimeoutMs: 5000,
		LogFile:          "shopgrip.log",
		Menu: []domain.MenuItem{
			{Title: "Collections", URL: "/collections"},
			{Title: "Blog", URL: "/blogs/journal"},
			{Title: "Policies", URL: "/policies"},
			{Title: "About", URL: "/pages/about"},
		},
		UISettings: UISettings{
			ShowPrices: true,
			ShowImages: false,
		},
	}
}
