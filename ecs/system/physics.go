package system

import (
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/physics"
)

// PhysicsSystem integrates the physics world and copies body positions back
// onto transforms.
type PhysicsSystem struct {
	world   *ecs.World
	physics *physics.World
}

func NewPhysicsSystem(w *ecs.World, pw *physics.World) *PhysicsSystem {
	return &PhysicsSystem{world: w, physics: pw}
}

func (ps *PhysicsSystem) Initialize() bool {
	return ps != nil && ps.world != nil && ps.physics != nil
}

func (ps *PhysicsSystem) OnFrameTick(dt float64) {}

func (ps *PhysicsSystem) OnPhysicsTick(dt float64) {
	ps.physics.Step(dt)

	for _, e := range ps.world.Query(component.PhysicsBodyComponent, component.TransformComponent) {
		body, ok := ecs.Get(ps.world, e, component.PhysicsBodyComponent)
		if !ok || body.Body == nil {
			continue
		}
		transform, ok := ecs.Get(ps.world, e, component.TransformComponent)
		if !ok {
			continue
		}
		transform.Position = body.Body.Position()
	}
}
