package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsSystemCopiesBodyPositions(t *testing.T) {
	w := ecs.NewWorld()
	pw := physics.NewWorld()

	e := ecs.CreateEntity(w)
	body := pw.NewBody(mgl64.Vec3{}, 1, 0.25)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body}))

	body.SetVelocity(mgl64.Vec3{1, 0, 2})

	s := NewPhysicsSystem(w, pw)
	require.True(t, s.Initialize())
	s.OnPhysicsTick(0.5)

	transform, _ := ecs.Get(w, e, component.TransformComponent)
	assert.InDelta(t, 0.5, transform.Position.X(), 1e-9)
	assert.InDelta(t, 1.0, transform.Position.Z(), 1e-9)
}

func TestPhysicsSystemRequiresWorlds(t *testing.T) {
	assert.False(t, NewPhysicsSystem(nil, physics.NewWorld()).Initialize())
	assert.False(t, NewPhysicsSystem(ecs.NewWorld(), nil).Initialize())
}

func TestKinematicControllerOnPhysicsBody(t *testing.T) {
	pw := physics.NewWorld()
	body := pw.NewBody(mgl64.Vec3{}, 1, 0.25)
	action, sampler := newMoveInput()

	c := NewKinematicController(body, sampler, axisView, nil)
	require.True(t, c.Initialize())
	c.OnEnable()
	assert.False(t, body.GravityEnabled())
	assert.True(t, body.RotationFrozen())

	action.Feed(mgl64.Vec2{0, 1})
	c.OnPhysicsTick(physicsDt)
	pw.Step(physicsDt)

	assert.InDelta(t, 0.25, body.Velocity().Z(), 1e-9)
	assert.InDelta(t, 0.005, body.Position().Z(), 1e-9)
}
