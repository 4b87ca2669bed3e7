package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isoplayer/assets"
	"github.com/milk9111/isoplayer/ecs/component"
)

// images caches decoded textures by the key they were requested with. Only
// touched from the game goroutine.
var images = map[string]*ebiten.Image{}

// LoadTexture loads an image from the embedded assets, falling back to the
// filesystem, and caches it by key. It matches entity.TextureLoader.
func LoadTexture(key string) (component.Texture, error) {
	img, err := LoadImage(key)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadImage loads an image from assets or filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img, ok := images[key]; ok {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	images[key] = img
	return img, nil
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if im, err := assets.DecodeImage(path); err == nil {
		return ebiten.NewImageFromImage(im), nil
	}
	for _, p := range []string{path, filepath.Join("assets", path)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("render: image %s not found", path)
}
