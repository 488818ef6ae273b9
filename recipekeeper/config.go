package recipekeeper

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store kinds
const (
	StoreFiles = "files"
	StoreBolt  = "bolt"
)

// Default values
const (
	DefaultMinWidth  = 80
	DefaultMinHeight = 24
	DefaultStore     = StoreFiles
	DefaultRecipeDir = "recipes"
	DefaultBoltPath  = "recipes.db"
	DefaultStyle     = "auto"
)

// ErrUnknownStore is returned when the configured store kind is not supported.
var ErrUnknownStore = errors.New("unknown store kind")

// ScreenPaths points each screen at a markdown definition file.
// An empty path selects the built-in definition.
type ScreenPaths struct {
	Welcome string `yaml:"welcome"`
	Search  string `yaml:"search"`
	Read    string `yaml:"read"`
}

// Path returns the configured definition path for a screen.
func (p ScreenPaths) Path(id ScreenID) string {
	switch id {
	case ScreenWelcome:
		return p.Welcome
	case ScreenSearchList:
		return p.Search
	case ScreenReadView:
		return p.Read
	default:
		return ""
	}
}

// Config is passed into the session at startup.
type Config struct {
	MinWidth  int         `yaml:"min_width"`
	MinHeight int         `yaml:"min_height"`
	Screens   ScreenPaths `yaml:"screens"`

	Store     string `yaml:"store"`
	RecipeDir string `yaml:"recipe_dir"`
	BoltPath  string `yaml:"bolt_path"`

	// Style is the glamour style: "dark", "light" or "auto".
	Style string `yaml:"style"`
	// HistoryMax bounds each history stack; 0 means unbounded.
	HistoryMax int `yaml:"history_max"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.MinWidth <= 0 {
		c.MinWidth = DefaultMinWidth
	}
	if c.MinHeight <= 0 {
		c.MinHeight = DefaultMinHeight
	}
	if c.Store == "" {
		c.Store = DefaultStore
	}
	if c.RecipeDir == "" {
		c.RecipeDir = DefaultRecipeDir
	}
	if c.BoltPath == "" {
		c.BoltPath = DefaultBoltPath
	}
	if c.Style == "" {
		c.Style = DefaultStyle
	}
	if c.HistoryMax < 0 {
		c.HistoryMax = 0
	}
	return c
}

// Validate checks values that have no sensible default.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFiles, StoreBolt:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStore, c.Store)
	}
}

// LoadConfig reads a YAML config file and fills in defaults for missing keys.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
