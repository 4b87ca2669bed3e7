package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPlayerControllerRoutesTicks(t *testing.T) {
	body := newFakeBody()
	action, sampler := newMoveInput()
	movement := NewKinematicController(body, sampler, axisView, nil)
	anim := newFakeAnimator()
	facing := NewFacingAnimator(anim, body, movement, axisView)

	p := NewPlayerController(movement, facing, nil)
	require.True(t, p.Initialize())
	p.OnEnable()
	assert.True(t, sampler.Enabled())

	action.Feed(mgl64.Vec2{1, 0})
	p.OnPhysicsTick(physicsDt)
	assert.InDelta(t, 0.25, body.velocity.X(), 1e-12)
	assert.Empty(t, anim.floats)

	p.OnFrameTick(0.016)
	assert.InDelta(t, 1, anim.floats[ParamLateral], 1e-12)
	assert.True(t, anim.bools[ParamIsMoving])

	p.OnDisable()
	assert.False(t, sampler.Enabled())
}

func TestPlayerControllerLogsMissingBehaviours(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	p := NewPlayerController(nil, nil, zap.New(core))
	assert.False(t, p.Initialize())

	entries := logs.FilterMessage("player controller: behaviours are not configured").All()
	require.Len(t, entries, 1)
	assert.Equal(t, false, entries[0].ContextMap()["movement"])
}

func TestPlayerControllerTicksOnlyReadyBehaviours(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	body := newFakeBody()
	body.velocity = mgl64.Vec3{1, 0, 0}
	// No sampler: movement cannot initialize.
	movement := NewKinematicController(body, nil, axisView, nil)
	anim := newFakeAnimator()
	facing := NewFacingAnimator(anim, body, fixedDirection{0, 0, 1}, axisView)

	p := NewPlayerController(movement, facing, zap.New(core))
	require.True(t, p.Initialize())
	assert.Equal(t, 1, logs.FilterMessage("player controller: kinematic controller failed to initialize").Len())

	assert.NotPanics(t, func() {
		p.OnEnable()
		p.OnPhysicsTick(physicsDt)
		p.OnDisable()
	})
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, body.velocity)

	p.OnFrameTick(0.016)
	assert.InDelta(t, 1, anim.floats[ParamForward], 1e-12)
}
