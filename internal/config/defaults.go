package config

import (
	_ "embed"
)

//go:embed defaults/balloon.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Balloon Shooting Game",
		},
		Tick: TickConfig{
			FPS: 60,
		},
		Cannon: CannonConfig{
			Speed: 5,
		},
		Balloon: BalloonConfig{
			Speed:         2,
			RedirectEvery: 0, // tick rate
		},
		Bullet: BulletConfig{
			SpeedFactor: 10,
		},
		Assets: AssetsConfig{
			Dir:     "assets",
			Cannon:  "cannon.png",
			Balloon: "balloon.png",
			Bullet:  "bullet.png",
		},
		Text: TextConfig{
			Size: 40,
		},
		Terminal: TerminalConfig{
			KeyReleaseMS: 300,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
