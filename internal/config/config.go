// Package config provides YAML-based game configuration loading and
// difficulty presets for the balloon shooter.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// GameConfig contains all configuration for the balloon shooter.
type GameConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Tick     TickConfig     `yaml:"tick"`
	Cannon   CannonConfig   `yaml:"cannon"`
	Balloon  BalloonConfig  `yaml:"balloon"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Assets   AssetsConfig   `yaml:"assets"`
	Text     TextConfig     `yaml:"text"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// ScreenConfig defines the window and playfield.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TickConfig defines the fixed simulation rate.
type TickConfig struct {
	FPS int `yaml:"fps"`
}

// CannonConfig defines the player cannon.
type CannonConfig struct {
	Speed int `yaml:"speed"` // Pixels per tick
}

// BalloonConfig defines the wandering balloon.
type BalloonConfig struct {
	Speed         int `yaml:"speed"`          // Pixels per tick
	RedirectEvery int `yaml:"redirect_every"` // Ticks between random redirects; 0 = tick rate
}

// BulletConfig defines bullets fired by the cannon.
type BulletConfig struct {
	SpeedFactor int `yaml:"speed_factor"` // Bullet speed as a multiple of the balloon speed
}

// AssetsConfig locates the sprite images.
type AssetsConfig struct {
	Dir     string `yaml:"dir"`
	Cannon  string `yaml:"cannon"`
	Balloon string `yaml:"balloon"`
	Bullet  string `yaml:"bullet"`
}

// TextConfig defines the won-screen text.
type TextConfig struct {
	Size float64 `yaml:"size"`
}

// TerminalConfig defines terminal frontend behaviour.
type TerminalConfig struct {
	// KeyReleaseMS is how long a held arrow may go without a key repeat
	// before it is treated as released.
	KeyReleaseMS int `yaml:"key_release_ms"`
}

// BulletSpeed returns the bullet speed in pixels per tick.
func (c GameConfig) BulletSpeed() int {
	return c.Balloon.Speed * c.Bullet.SpeedFactor
}

// RedirectInterval returns the number of ticks between random balloon redirects.
func (c GameConfig) RedirectInterval() int {
	if c.Balloon.RedirectEvery > 0 {
		return c.Balloon.RedirectEvery
	}
	return c.Tick.FPS
}

// Validate checks that every size, speed and rate is usable.
func (c GameConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Tick.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Tick.FPS)
	case c.Cannon.Speed <= 0:
		return fmt.Errorf("%w: cannon speed %d", ErrInvalid, c.Cannon.Speed)
	case c.Balloon.Speed <= 0:
		return fmt.Errorf("%w: balloon speed %d", ErrInvalid, c.Balloon.Speed)
	case c.Balloon.RedirectEvery < 0:
		return fmt.Errorf("%w: balloon redirect_every %d", ErrInvalid, c.Balloon.RedirectEvery)
	case c.Bullet.SpeedFactor <= 0:
		return fmt.Errorf("%w: bullet speed_factor %d", ErrInvalid, c.Bullet.SpeedFactor)
	case c.Text.Size <= 0:
		return fmt.Errorf("%w: text size %v", ErrInvalid, c.Text.Size)
	case c.Terminal.KeyReleaseMS < 0:
		return fmt.Errorf("%w: terminal key_release_ms %d", ErrInvalid, c.Terminal.KeyReleaseMS)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the loaded values.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Balloon.Speed = 1
		cfg.Balloon.RedirectEvery = cfg.Tick.FPS * 2
	case DifficultyHard:
		cfg.Balloon.Speed = 3
		cfg.Balloon.RedirectEvery = cfg.Tick.FPS / 2
	}
}
