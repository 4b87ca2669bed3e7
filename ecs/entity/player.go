package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/ecs/system"
	"github.com/milk9111/isoplayer/physics"
	"github.com/milk9111/isoplayer/prefabs"
)

const (
	defaultMass   = 1.0
	defaultRadius = 0.25
)

// NewPlayer builds the player entity from spec: a physics body in pw, an
// animator over the directional sheet and an empty billboard.
func NewPlayer(w *ecs.World, pw *physics.World, spec *prefabs.PlayerSpec, load TextureLoader) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: spec is nil")
	}
	if pw == nil {
		return 0, fmt.Errorf("player: physics world is nil")
	}

	var body *physics.Body

	steps := []buildStep{
		{name: "player tag", fn: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
		}},
		nameStep(spec.Name),
		transformStep(spec.Transform),
		{name: "input", fn: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, component.InputComponent, &component.Input{Action: spec.Input.Action})
		}},
		{name: "movement", fn: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, component.MovementComponent, movementFromSpec(spec.Movement))
		}},
		{name: "physics body", fn: func(w *ecs.World, e ecs.Entity) error {
			mass := spec.PhysicsBody.Mass
			if mass <= 0 {
				mass = defaultMass
			}
			radius := spec.PhysicsBody.Radius
			if radius <= 0 {
				radius = defaultRadius
			}
			body = pw.NewBody(spec.Transform.Position.Vec3(), mass, radius)
			return ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Mass: mass, Radius: radius})
		}},
		{name: "animator", fn: func(w *ecs.World, e ecs.Entity) error {
			anim, err := animatorFromSpec(spec, load)
			if err != nil {
				return err
			}
			return ecs.Add(w, e, component.AnimatorComponent, anim)
		}},
		{name: "sprite renderer", fn: func(w *ecs.World, e ecs.Entity) error {
			anim, _ := ecs.Get(w, e, component.AnimatorComponent)
			renderer := &component.SpriteRenderer{Color: spec.Tint.ColorOr(color.White)}
			if clip, ok := anim.Clips[system.ClipIdle]; ok {
				renderer.Sprite = anim.Sheet.Frame(clip.Row, clip.ColStart)
			}
			return ecs.Add(w, e, component.SpriteRendererComponent, renderer)
		}},
		renderLayerStep(spec.RenderLayer),
		billboardStep(),
	}

	e, err := build(w, "player", steps)
	if err != nil {
		if body != nil {
			pw.RemoveBody(body)
		}
		return 0, err
	}
	return e, nil
}

// movementFromSpec fills unset values from the defaults.
func movementFromSpec(spec prefabs.MovementSpec) *component.Movement {
	m := component.DefaultMovement()
	if spec.MaxSpeed > 0 {
		m.MaxSpeed = spec.MaxSpeed
	}
	if spec.AccelSpeed > 0 {
		m.AccelSpeed = spec.AccelSpeed
	}
	if spec.DecelerateSpeed > 0 {
		m.DecelerateSpeed = spec.DecelerateSpeed
	}
	return &m
}

// MovementFromSpec is used by hot reload to retune a live controller.
func MovementFromSpec(spec prefabs.MovementSpec) component.Movement {
	return *movementFromSpec(spec)
}

func animatorFromSpec(spec *prefabs.PlayerSpec, load TextureLoader) (*component.Animator, error) {
	tex, err := loadTexture(load, spec.Sheet.Image)
	if err != nil {
		return nil, err
	}
	if spec.Sheet.FrameW <= 0 || spec.Sheet.FrameH <= 0 {
		return nil, fmt.Errorf("sheet %q: frame size must be positive", spec.Sheet.Image)
	}

	anim := component.NewAnimator()
	anim.Sheet = &component.SpriteSheet{
		Texture:       tex,
		FrameW:        spec.Sheet.FrameW,
		FrameH:        spec.Sheet.FrameH,
		PixelsPerUnit: spec.Sheet.PixelsPerUnit,
		Pivot:         mgl64.Vec2{spec.Sheet.PivotX, spec.Sheet.PivotY},
	}
	for name, clip := range spec.Animation.Clips {
		anim.Clips[name] = component.AnimationClip{
			Name:       name,
			Row:        clip.Row,
			ColStart:   clip.ColStart,
			FrameCount: clip.FrameCount,
			FPS:        clip.FPS,
			Loop:       clip.Loop,
		}
	}
	return anim, nil
}
