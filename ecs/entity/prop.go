package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/prefabs"
)

// NewProp builds a static billboard showing a single sprite.
func NewProp(w *ecs.World, spec prefabs.PropSpec, load TextureLoader) (ecs.Entity, error) {
	label := fmt.Sprintf("prop %q", spec.Name)
	return build(w, label, []buildStep{
		nameStep(spec.Name),
		transformStep(spec.Transform),
		{name: "sprite renderer", fn: func(w *ecs.World, e ecs.Entity) error {
			tex, err := loadTexture(load, spec.Sprite.Image)
			if err != nil {
				return err
			}
			return ecs.Add(w, e, component.SpriteRendererComponent, &component.SpriteRenderer{
				Sprite: &component.Sprite{
					Name:          spec.Name,
					Texture:       tex,
					Rect:          component.Rect{X: spec.Sprite.X, Y: spec.Sprite.Y, W: spec.Sprite.W, H: spec.Sprite.H},
					PixelsPerUnit: spec.Sprite.PixelsPerUnit,
					Pivot:         mgl64.Vec2{spec.Sprite.PivotX, spec.Sprite.PivotY},
				},
				Color: spec.Tint.ColorOr(color.White),
			})
		}},
		renderLayerStep(spec.RenderLayer),
		billboardStep(),
	})
}
