package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 1440
	DefaultHeight       = 900
	DefaultFPS          = 60
	DefaultSeed         = 1
	DefaultScrollStep   = 120
	DefaultSmoothScroll = 1.0
	DefaultTheme        = "night"
	DefaultLogLevel     = "info"
	DefaultStore        = "sessions"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	FPS      int            `yaml:"fps"`
	Seed     int64          `yaml:"seed"`
	Loading  LoadingConfig  `yaml:"loading"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Theme    string         `yaml:"theme"`
	LogLevel string         `yaml:"log_level"`
	Store    string         `yaml:"store"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type LoadingConfig struct {
	LogoDuration     float64 `yaml:"logo_duration"`
	ProgressDuration float64 `yaml:"progress_duration"`
	FadeDuration     float64 `yaml:"fade_duration"`
}

type ScrollConfig struct {
	Step           float64 `yaml:"step"`
	SmoothDuration float64 `yaml:"smooth_duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Viewport: ViewportConfig{Width: DefaultWidth, Height: DefaultHeight},
		FPS:      DefaultFPS,
		Seed:     DefaultSeed,
		Loading: LoadingConfig{
			LogoDuration:     1,
			ProgressDuration: 2.5,
			FadeDuration:     1,
		},
		Scroll: ScrollConfig{
			Step:           DefaultScrollStep,
			SmoothDuration: DefaultSmoothScroll,
		},
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Store:    DefaultStore,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport %.0fx%.0f", ErrInvalid, c.Viewport.Width, c.Viewport.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.Loading.LogoDuration < 0 || c.Loading.ProgressDuration < 0 || c.Loading.FadeDuration < 0:
		return fmt.Errorf("%w: negative loading duration", ErrInvalid)
	case c.Scroll.Step <= 0:
		return fmt.Errorf("%w: scroll step %.0f", ErrInvalid, c.Scroll.Step)
	case c.Scroll.SmoothDuration < 0:
		return fmt.Errorf("%w: smooth scroll %.2f", ErrInvalid, c.Scroll.SmoothDuration)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Dt is the fixed step for the configured frame rate.
func (c *Config) Dt() float64 { return 1 / float64(c.FPS) }

// ApplyPreset copies a preset's viewport into the config.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	c.Viewport = p.Viewport
	return nil
}
