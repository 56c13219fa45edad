// Package assets loads the sprite images used by the game frontends.
// Images are decoded once at startup; any failure is fatal to the caller.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"os"
	"path/filepath"

	"github.com/vovakirdan/balloon-shooter/internal/config"
	"github.com/vovakirdan/balloon-shooter/internal/core"
)

// Sprites holds the decoded sprite images.
type Sprites struct {
	Cannon  image.Image
	Balloon image.Image
	Bullet  image.Image
}

// Load decodes the three sprite images named by cfg.
func Load(cfg config.AssetsConfig) (*Sprites, error) {
	cannon, err := loadImage(filepath.Join(cfg.Dir, cfg.Cannon))
	if err != nil {
		return nil, err
	}
	balloon, err := loadImage(filepath.Join(cfg.Dir, cfg.Balloon))
	if err != nil {
		return nil, err
	}
	bullet, err := loadImage(filepath.Join(cfg.Dir, cfg.Bullet))
	if err != nil {
		return nil, err
	}
	return &Sprites{Cannon: cannon, Balloon: balloon, Bullet: bullet}, nil
}

// Sizes returns the pixel size of each sprite.
func (s *Sprites) Sizes() (cannon, balloon, bullet core.Size) {
	return SizeOf(s.Cannon), SizeOf(s.Balloon), SizeOf(s.Bullet)
}

// SizeOf returns the pixel size of an image.
func SizeOf(img image.Image) core.Size {
	b := img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// loadImage reads and decodes a single image file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}
	return img, nil
}
