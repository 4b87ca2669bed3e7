package component

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Texture is anything with pixel bounds; *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Sprite is an immutable region of a texture. Rect and Pivot are in pixels
// with the origin at the bottom-left of the texture.
type Sprite struct {
	Name          string
	Texture       Texture
	Rect          Rect
	PixelsPerUnit float64
	Pivot         mgl64.Vec2
}

// Rect is a pixel rectangle given by its bottom-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Min() mgl64.Vec2 {
	return mgl64.Vec2{r.X, r.Y}
}

func (r Rect) Max() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.W, r.Y + r.H}
}

func (r Rect) Size() mgl64.Vec2 {
	return mgl64.Vec2{r.W, r.H}
}

// TextureSize returns the pixel size of the sprite's texture.
func (s *Sprite) TextureSize() mgl64.Vec2 {
	if s == nil || s.Texture == nil {
		return mgl64.Vec2{}
	}
	b := s.Texture.Bounds()
	return mgl64.Vec2{float64(b.Dx()), float64(b.Dy())}
}

// SpriteSheet slices a texture into equal frames and caches one *Sprite per
// cell, so the same cell always yields the same sprite reference.
type SpriteSheet struct {
	Texture       Texture
	FrameW        int
	FrameH        int
	PixelsPerUnit float64
	Pivot         mgl64.Vec2

	cells map[[2]int]*Sprite
}

// Frame returns the sprite at row/col counted from the top-left cell, or nil
// when the cell is outside the texture.
func (s *SpriteSheet) Frame(row, col int) *Sprite {
	if s == nil || s.Texture == nil || s.FrameW <= 0 || s.FrameH <= 0 || row < 0 || col < 0 {
		return nil
	}
	b := s.Texture.Bounds()
	if (col+1)*s.FrameW > b.Dx() || (row+1)*s.FrameH > b.Dy() {
		return nil
	}
	key := [2]int{row, col}
	if sp, ok := s.cells[key]; ok {
		return sp
	}
	if s.cells == nil {
		s.cells = make(map[[2]int]*Sprite)
	}
	sp := &Sprite{
		Texture: s.Texture,
		Rect: Rect{
			X: float64(col * s.FrameW),
			Y: float64(b.Dy() - (row+1)*s.FrameH),
			W: float64(s.FrameW),
			H: float64(s.FrameH),
		},
		PixelsPerUnit: s.PixelsPerUnit,
		Pivot:         s.Pivot,
	}
	s.cells[key] = sp
	return sp
}

// SpriteRenderer is the billboard's source: the assigned sprite and the flat
// tint pushed to the material every frame.
type SpriteRenderer struct {
	Sprite *Sprite
	Color  color.Color
}

var SpriteRendererComponent = NewComponent[SpriteRenderer]()
