package system

import (
	"math"

	"github.com/milk9111/isoplayer/common"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
)

const (
	ClipIdle = "idle"
	ClipWalk = "walk"

	// Directions counts the sheet rows of a directional clip, clockwise from
	// "away from the camera".
	Directions = 8
)

// SpriteAnimationSystem turns animator blend parameters into a sprite frame:
// the X/Y pair picks one of eight facing rows and isMoving picks walk or
// idle.
type SpriteAnimationSystem struct {
	world *ecs.World
}

func NewSpriteAnimationSystem(w *ecs.World) *SpriteAnimationSystem {
	return &SpriteAnimationSystem{world: w}
}

func (a *SpriteAnimationSystem) Initialize() bool {
	return a != nil && a.world != nil
}

func (a *SpriteAnimationSystem) OnPhysicsTick(dt float64) {}

func (a *SpriteAnimationSystem) OnFrameTick(dt float64) {
	for _, e := range a.world.Query(component.AnimatorComponent, component.SpriteRendererComponent) {
		anim, ok := ecs.Get(a.world, e, component.AnimatorComponent)
		if !ok || anim.Sheet == nil {
			continue
		}
		renderer, ok := ecs.Get(a.world, e, component.SpriteRendererComponent)
		if !ok {
			continue
		}
		if sprite := advance(anim, dt); sprite != nil {
			renderer.Sprite = sprite
		}
	}
}

func advance(anim *component.Animator, dt float64) *component.Sprite {
	anim.Direction = FacingIndex(anim.Float(ParamLateral), anim.Float(ParamForward), anim.Direction)

	clip := ClipIdle
	if anim.Bool(ParamIsMoving) {
		clip = ClipWalk
	}
	if clip != anim.Current {
		anim.Current = clip
		anim.Frame = 0
		anim.Elapsed = 0
	}

	def, ok := anim.Clips[clip]
	if !ok || def.FrameCount <= 0 {
		return nil
	}

	if def.FPS > 0 && dt > 0 {
		frameTime := 1 / def.FPS
		anim.Elapsed += dt
		for anim.Elapsed >= frameTime {
			anim.Elapsed -= frameTime
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Elapsed = 0
					break
				}
			}
		}
	}

	return anim.Sheet.Frame(def.Row+anim.Direction, def.ColStart+anim.Frame)
}

// FacingIndex maps a camera-space direction to one of eight rows, 0 facing
// away from the camera and increasing clockwise. A zero direction keeps
// previous.
func FacingIndex(lateral, forward float64, previous int) int {
	if math.Abs(lateral) <= common.Epsilon && math.Abs(forward) <= common.Epsilon {
		return previous
	}
	angle := math.Atan2(lateral, forward)
	idx := int(math.Round(angle / (2 * math.Pi / Directions)))
	return ((idx % Directions) + Directions) % Directions
}
