package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/input"
)

// Controls polls keyboard and the first gamepad once per update and feeds the
// move action.
type Controls struct {
	move *input.Action
}

func NewControls(move *input.Action) *Controls {
	return &Controls{move: move}
}

func (c *Controls) Update(w *ecs.World) {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	var stick mgl64.Vec2
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		stick = mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			// Stick Y grows downward.
			-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
	}

	c.move.Feed(input.Compose(left, right, up, down, stick, input.StickDeadzone))

	value := c.move.Value()
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		if in.Action == c.move.Name() {
			in.Move = value
		}
	})
}
