/*
Package config manages the TOML config for arena.

Values are resolved in layers, later layers winning:

	builtin defaults -> config.toml -> ARENA_* environment -> command line flags

The default file lives under the XDG config home and is created with the
builtin defaults the first time it is missing:

	[source]
	url = "https://s3-ap-southeast-1.amazonaws.com/he-public-data/gamesarena274f2bf.json"
	timeout = "15s"

	[ui]
	default_sort = ""
	max_suggestions = 8
	did_you_mean_distance = 3
	alt_screen = true

	[server]
	max_request_bytes = 4096
*/
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/bastiangx/arena/internal/utils"
	"github.com/bastiangx/arena/pkg/catalog"
	"github.com/bastiangx/arena/pkg/query"
	"github.com/charmbracelet/log"
)

const appName = "arena"

// Config holds the entire config structure
type Config struct {
	Source SourceConfig `toml:"source"`
	UI     UIConfig     `toml:"ui"`
	Server ServerConfig `toml:"server"`
}

// SourceConfig describes where the dataset comes from.
type SourceConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

// UIConfig has options shared by the TUI and the CLI.
type UIConfig struct {
	DefaultSort        string `toml:"default_sort"`
	MaxSuggestions     int    `toml:"max_suggestions"`
	DidYouMeanDistance int    `toml:"did_you_mean_distance"`
	AltScreen          bool   `toml:"alt_screen"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxRequestBytes int `toml:"max_request_bytes"`
}

// Duration is a time.Duration written as "15s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     catalog.DefaultSourceURL,
			Timeout: Duration{catalog.DefaultTimeout},
		},
		UI: UIConfig{
			DefaultSort:        string(query.SortNone),
			MaxSuggestions:     8,
			DidYouMeanDistance: 3,
			AltScreen:          true,
		},
		Server: ServerConfig{
			MaxRequestBytes: 4096,
		},
	}
}

// GetDefaultConfigPath returns $XDG_CONFIG_HOME/arena/config.toml
func GetDefaultConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, "config.toml"))
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [XDG_CONFIG_HOME]/arena/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every value that still parses and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "source"); ok {
		extractSourceConfig(section, &config.Source)
	}
	if section, ok := utils.ExtractSection(tempConfig, "ui"); ok {
		extractUIConfig(section, &config.UI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	return config, nil
}

func extractSourceConfig(data map[string]any, source *SourceConfig) {
	if val, ok := utils.ExtractString(data, "url"); ok {
		source.URL = val
	}
	if val, ok := utils.ExtractString(data, "timeout"); ok {
		if d, err := time.ParseDuration(val); err == nil {
			source.Timeout = Duration{d}
		}
	}
}

func extractUIConfig(data map[string]any, ui *UIConfig) {
	if val, ok := utils.ExtractString(data, "default_sort"); ok {
		ui.DefaultSort = val
	}
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		ui.MaxSuggestions = val
	}
	if val, ok := utils.ExtractInt64(data, "did_you_mean_distance"); ok {
		ui.DidYouMeanDistance = val
	}
	if val, ok := utils.ExtractBool(data, "alt_screen"); ok {
		ui.AltScreen = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_request_bytes"); ok {
		server.MaxRequestBytes = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SortPolicy returns the validated default sort policy.
func (c *Config) SortPolicy() query.SortPolicy {
	p, err := query.ParseSortPolicy(c.UI.DefaultSort)
	if err != nil {
		return query.SortNone
	}
	return p
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Source.URL == "" {
		errs = append(errs, errors.New("source.url is empty"))
	}
	if c.Source.Timeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("source.timeout must not be negative, got %s", c.Source.Timeout))
	}
	if _, err := query.ParseSortPolicy(c.UI.DefaultSort); err != nil {
		errs = append(errs, fmt.Errorf("ui.default_sort: %w", err))
	}
	if c.UI.MaxSuggestions < 1 {
		errs = append(errs, fmt.Errorf("ui.max_suggestions must be positive, got %d", c.UI.MaxSuggestions))
	}
	if c.UI.DidYouMeanDistance < 0 {
		errs = append(errs, fmt.Errorf("ui.did_you_mean_distance must not be negative, got %d", c.UI.DidYouMeanDistance))
	}
	if c.Server.MaxRequestBytes < 1 {
		errs = append(errs, fmt.Errorf("server.max_request_bytes must be positive, got %d", c.Server.MaxRequestBytes))
	}
	return errors.Join(errs...)
}
