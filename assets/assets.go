// Package assets embeds the game's sprite images.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	Hammer = "hammer.png"
	Cat    = "cat.png"
)

//go:embed images/*.png
var images embed.FS

// Decode decodes the embedded image called name.
func Decode(name string) (image.Image, error) {
	f, err := images.Open("images/" + name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Load decodes the embedded image called name into an ebiten image.
func Load(name string) (*ebiten.Image, error) {
	img, err := Decode(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
