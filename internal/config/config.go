package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/csheth/snapsheet/internal/motion"
	"github.com/csheth/snapsheet/internal/sheet"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Sheet     SheetConfig     `toml:"sheet"`
	Viewport  ViewportConfig  `toml:"viewport"`
	Animation AnimationConfig `toml:"animation"`
	Content   ContentConfig   `toml:"content"`
}

type SheetConfig struct {
	Draggable   bool    `toml:"draggable"`
	InitialMode string  `toml:"initial_mode"`
	Overshoot   float64 `toml:"overshoot"`
}

// ViewportConfig holds the insets in terminal rows. The terminal has no
// safe area of its own, so these are purely a layout preference.
type ViewportConfig struct {
	TopInset    float64 `toml:"top_inset"`
	BottomInset float64 `toml:"bottom_inset"`
}

type AnimationConfig struct {
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
}

type ContentConfig struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

const defaultBody = `Drag the handle with the mouse and let go. The sheet settles on hidden, quarter, half or full depending on where it was released.

Releases are amplified a little past the pointer, so a short flick is enough to move a detent in the direction of travel.

Keys: up/down step one detent, 1-4 pick a detent directly, d toggles dragging, ? shows every binding, q quits.

Scroll this text with the mouse wheel while the sheet is open.`

func DefaultConfig() *Config {
	return &Config{
		Sheet: SheetConfig{
			Draggable:   true,
			InitialMode: sheet.ModeHalf.String(),
			Overshoot:   sheet.DefaultOvershoot,
		},
		Viewport: ViewportConfig{
			TopInset:    1,
			BottomInset: 1,
		},
		Animation: AnimationConfig{
			FPS:       motion.DefaultFPS,
			Frequency: motion.DefaultFrequency,
			Damping:   motion.DefaultDamping,
		},
		Content: ContentConfig{
			Title: "snapsheet",
			Body:  defaultBody,
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "snapsheet"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path, or at ConfigPath when path is empty. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: sheet.initial_mode: %w", ErrInvalidConfig, err)
	}
	if c.Sheet.Overshoot <= 1 {
		return fmt.Errorf("%w: sheet.overshoot must be greater than 1, got %v", ErrInvalidConfig, c.Sheet.Overshoot)
	}
	if c.Viewport.TopInset < 0 || c.Viewport.BottomInset < 0 {
		return fmt.Errorf("%w: viewport insets must not be negative", ErrInvalidConfig)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("%w: animation.fps must be positive, got %d", ErrInvalidConfig, c.Animation.FPS)
	}
	if c.Animation.Frequency <= 0 {
		return fmt.Errorf("%w: animation.frequency must be positive, got %v", ErrInvalidConfig, c.Animation.Frequency)
	}
	if c.Animation.Damping < 0 {
		return fmt.Errorf("%w: animation.damping must not be negative, got %v", ErrInvalidConfig, c.Animation.Damping)
	}
	return nil
}

// Mode parses the configured initial detent.
func (c *Config) Mode() (sheet.Mode, error) {
	return sheet.ParseMode(c.Sheet.InitialMode)
}

// Motion converts the animation section for the animator.
func (c *Config) Motion() motion.Config {
	return motion.Config{
		FPS:       c.Animation.FPS,
		Frequency: c.Animation.Frequency,
		Damping:   c.Animation.Damping,
	}
}

func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
