package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Per-directory config files, looked up in order before the user config
const (
	LocalFile     = ".listkit.toml"
	LocalYAMLFile = ".listkit.yaml"
)

// DefaultTypeaheadDelay is the idle time in seconds before a search resets
const DefaultTypeaheadDelay = 0.5

// Config represents the application configuration
type Config struct {
	Listbox ListboxSettings `toml:"listbox" yaml:"listbox"`
	Options []OptionConfig  `toml:"options" yaml:"options"`
	Logging LoggingSettings `toml:"logging" yaml:"logging"`
}

// ListboxSettings are the host inputs of the list
type ListboxSettings struct {
	Multi          bool    `toml:"multi" yaml:"multi"`
	Wrap           bool    `toml:"wrap" yaml:"wrap"`
	TypeaheadDelay float64 `toml:"typeahead_delay" yaml:"typeahead_delay"` // seconds
	SelectionMode  string  `toml:"selection_mode" yaml:"selection_mode"`   // follow or explicit
	Orientation    string  `toml:"orientation" yaml:"orientation"`         // vertical or horizontal
	FocusMode      string  `toml:"focus_mode" yaml:"focus_mode"`           // roving or activedescendant
	Disabled       bool    `toml:"disabled" yaml:"disabled"`
}

// OptionConfig is one entry of the list
type OptionConfig struct {
	ID       string `toml:"id,omitempty" yaml:"id,omitempty"`
	Label    string `toml:"label" yaml:"label"`
	Value    string `toml:"value,omitempty" yaml:"value,omitempty"`
	Disabled bool   `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	Selected bool   `toml:"selected,omitempty" yaml:"selected,omitempty"`
}

// Key returns the value identifying the option, falling back to its label
func (o OptionConfig) Key() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

// LoggingSettings configures the log file
type LoggingSettings struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file,omitempty" yaml:"file,omitempty"`
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
	explicit string
	filePath string
}

// NewConfigService creates a config service. A non-empty path is used as is;
// otherwise the local file and then the user config directory are tried.
func NewConfigService(path string) ConfigService {
	return &configService{
		explicit: path,
		filePath: path,
	}
}

// UserConfigPath returns $XDG_CONFIG_HOME/listkit/config.toml or its platform equivalent
func UserConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "listkit", "config.toml")
}

// Path returns the file the last Load read from, or where Save writes
func (cs *configService) Path() string {
	if cs.filePath == "" {
		return UserConfigPath()
	}
	return cs.filePath
}

// Load loads the configuration, returning defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if cs.explicit != "" {
		return cs.LoadFromPath(cs.explicit)
	}

	for _, candidate := range []string{LocalFile, LocalYAMLFile, UserConfigPath()} {
		if _, err := os.Stat(candidate); err == nil {
			cs.filePath = candidate
			return cs.LoadFromPath(candidate)
		}
	}

	return DefaultConfig(), nil
}

// Save saves the configuration to the resolved path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.Path())
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
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

	data, err := Marshal(config, FormatFor(path))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Format is a config file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the format named by s
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown config format %q", s)
}

// FormatFor picks the encoding from the file extension, defaulting to TOML
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data over the defaults. Options listed in data replace the
// sample options entirely.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Options = nil

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes cfg in format
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return toml.Marshal(cfg)
	}
}

// Validate reports every invalid field
func (c *Config) Validate() error {
	var errs []error

	if c.Listbox.TypeaheadDelay < 0 {
		errs = append(errs, fmt.Errorf("listbox.typeahead_delay must not be negative, got %v", c.Listbox.TypeaheadDelay))
	}
	if !oneOf(c.Listbox.SelectionMode, "", "follow", "explicit") {
		errs = append(errs, fmt.Errorf("listbox.selection_mode must be follow or explicit, got %q", c.Listbox.SelectionMode))
	}
	if !oneOf(c.Listbox.Orientation, "", "vertical", "horizontal") {
		errs = append(errs, fmt.Errorf("listbox.orientation must be vertical or horizontal, got %q", c.Listbox.Orientation))
	}
	if !oneOf(c.Listbox.FocusMode, "", "roving", "activedescendant") {
		errs = append(errs, fmt.Errorf("listbox.focus_mode must be roving or activedescendant, got %q", c.Listbox.FocusMode))
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging.level: %w", err))
		}
	}

	seen := make(map[string]int, len(c.Options))
	selected := 0
	for i, opt := range c.Options {
		key := opt.Key()
		if key == "" {
			errs = append(errs, fmt.Errorf("options[%d] needs a label or a value", i))
			continue
		}
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("options[%d] repeats the value %q of options[%d]", i, key, first))
		} else {
			seen[key] = i
		}
		if opt.Selected {
			selected++
		}
	}
	if !c.Listbox.Multi && selected > 1 {
		errs = append(errs, fmt.Errorf("%d options are selected but listbox.multi is off", selected))
	}

	return errors.Join(errs...)
}

// Delay returns the typeahead delay in seconds, using the default when unset
func (c *Config) Delay() float64 {
	if c.Listbox.TypeaheadDelay == 0 {
		return DefaultTypeaheadDelay
	}
	return c.Listbox.TypeaheadDelay
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Listbox: ListboxSettings{
			Multi:          false,
			Wrap:           true,
			TypeaheadDelay: DefaultTypeaheadDelay,
			SelectionMode:  "follow",
			Orientation:    "vertical",
			FocusMode:      "roving",
		},
		Options: []OptionConfig{
			{Label: "Apple"},
			{Label: "Apricot"},
			{Label: "Banana"},
			{Label: "Blackberry"},
			{Label: "Blueberry"},
			{Label: "Cherry"},
			{Label: "Durian", Disabled: true},
			{Label: "Elderberry"},
			{Label: "Fig"},
			{Label: "Grape"},
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

func oneOf(s string, allowed ...string) bool {
	return slices.Contains(allowed, s)
}
