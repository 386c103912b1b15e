package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"meshview/internal/eventbus"
)

// Render modes accepted by ui.render_mode
const (
	RenderWireframe = "wireframe"
	RenderPoints    = "points"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Chooser ChooserSettings `toml:"chooser"`
	Extract ExtractSettings `toml:"extract"`
	UI      UISettings      `toml:"ui"`
}

// ChooserSettings controls the file selection dialog
type ChooserSettings struct {
	StartDir     string   `toml:"start_dir"`
	AllowedTypes []string `toml:"allowed_types"` // extensions; empty allows every regular file
	Command      []string `toml:"command"`       // external chooser, replaces the built-in picker
	ShowHidden   bool     `toml:"show_hidden"`
}

// ExtractSettings controls the geometry extractors
type ExtractSettings struct {
	IfcConvert string   `toml:"ifc_convert"`
	Timeout    Duration `toml:"timeout"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	RenderMode  string `toml:"render_mode"`
	WatchSource bool   `toml:"watch_source"`
	ShowAxes    bool   `toml:"show_axes"`
}

// Duration is a time.Duration stored as a string such as "30s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
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
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns <UserConfigDir>/meshview/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "meshview", "config.toml")
}

// NewConfigService creates a config service for the given file; an empty
// path selects DefaultPath.
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

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults; nothing is written.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

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

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// Validate checks values that cannot be fixed up silently
func (c *Config) Validate() error {
	switch c.UI.RenderMode {
	case RenderWireframe, RenderPoints:
	case "":
		c.UI.RenderMode = RenderWireframe
	default:
		return fmt.Errorf("unknown render_mode %q", c.UI.RenderMode)
	}
	if c.Extract.Timeout.Duration < 0 {
		return fmt.Errorf("extract.timeout must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Version: 1,
		Chooser: ChooserSettings{
			StartDir:     homeDir,
			AllowedTypes: []string{},
		},
		Extract: ExtractSettings{
			IfcConvert: "IfcConvert",
			Timeout:    Duration{2 * time.Minute},
		},
		UI: UISettings{
			RenderMode:  RenderWireframe,
			WatchSource: true,
			ShowAxes:    true,
		},
	}
}
