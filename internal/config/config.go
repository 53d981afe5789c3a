package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"carousel/internal/carousel"
	"carousel/internal/eventbus"
)

// Bounds of the authoring controls
const (
	MaxItemsTotal   = 20
	MaxItemsPerView = 10
)

// FileName is the state file name inside the config directory
const FileName = "carousel.toml"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// ErrEmptyConfig is returned for a blank state file, e.g. one caught mid-write
var ErrEmptyConfig = errors.New("empty config file")

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Carousel   Carousel   `toml:"carousel"`
	UISettings UISettings `toml:"ui"`
}

// Carousel holds the author-chosen counts and the persisted index
type Carousel struct {
	ItemsTotal   int `toml:"items_total"`
	ItemsPerView int `toml:"items_per_view"`
	CurrentIndex int `toml:"current_index"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowOffset     bool `toml:"show_offset"`
	SaveOnMove     bool `toml:"save_on_move"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// State converts the stored triple into a controller snapshot
func (c Carousel) State() carousel.State {
	return carousel.State{
		ItemsTotal:   c.ItemsTotal,
		ItemsPerView: c.ItemsPerView,
		CurrentIndex: c.CurrentIndex,
	}
}

// SetState stores a controller snapshot
func (c *Carousel) SetState(s carousel.State) {
	c.ItemsTotal = s.ItemsTotal
	c.ItemsPerView = s.ItemsPerView
	c.CurrentIndex = s.CurrentIndex
}

// Validate checks the counts against the authoring ranges and the index against the counts
func (c Carousel) Validate() error {
	switch {
	case c.ItemsTotal < 1 || c.ItemsTotal > MaxItemsTotal:
		return fmt.Errorf("%w: items_total must be between 1 and %d, got %d", ErrInvalidConfig, MaxItemsTotal, c.ItemsTotal)
	case c.ItemsPerView < 1 || c.ItemsPerView > MaxItemsPerView:
		return fmt.Errorf("%w: items_per_view must be between 1 and %d, got %d", ErrInvalidConfig, MaxItemsPerView, c.ItemsPerView)
	case c.ItemsPerView > c.ItemsTotal:
		return fmt.Errorf("%w: items_per_view (%d) exceeds items_total (%d)", ErrInvalidConfig, c.ItemsPerView, c.ItemsTotal)
	case c.CurrentIndex < 0 || c.CurrentIndex >= c.ItemsTotal:
		return fmt.Errorf("%w: current_index must be between 0 and %d, got %d", ErrInvalidConfig, c.ItemsTotal-1, c.CurrentIndex)
	}
	return nil
}

// Validate checks the whole configuration
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidConfig, c.Version)
	}
	return c.Carousel.Validate()
}

// ConfigService handles configuration management
type ConfigService interface {
	Path() string
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	mu       sync.Mutex
}

// DefaultPath returns the state file location under the XDG config home
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "carousel", FileName)
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigServiceAt(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrEmptyConfig) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			State: cfg.Carousel.State(),
		})
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

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to a sibling temp file and rename so readers never see a partial file
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Parse decodes and validates a TOML document
func Parse(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyConfig
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Carousel: Carousel{
			ItemsTotal:   9,
			ItemsPerView: 3,
			CurrentIndex: 0,
		},
		UISettings: UISettings{
			ShowOffset:     true,
			SaveOnMove:     true,
			AutosaveOnExit: true,
		},
	}
}
