package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestFacingAnimatorProjectsDirection(t *testing.T) {
	anim := newFakeAnimator()
	body := newFakeBody()
	body.velocity = mgl64.Vec3{0.5, 0, 0}

	f := NewFacingAnimator(anim, body, fixedDirection{1, 0, 0}, axisView)
	assert.True(t, f.Initialize())
	f.OnFrameTick(0.016)

	assert.InDelta(t, 1, anim.floats[ParamLateral], 1e-12)
	assert.InDelta(t, 0, anim.floats[ParamForward], 1e-12)
	assert.True(t, anim.bools[ParamIsMoving])
}

func TestFacingAnimatorUsesFlattenedCameraBasis(t *testing.T) {
	anim := newFakeAnimator()
	view := &component.CameraView{Yaw: 45, Pitch: 30}

	f := NewFacingAnimator(anim, newFakeBody(), fixedDirection{0, 0, 3}, view)
	f.OnFrameTick(0.016)

	assert.InDelta(t, -math.Sqrt2/2, anim.floats[ParamLateral], 1e-9)
	assert.InDelta(t, math.Sqrt2/2, anim.floats[ParamForward], 1e-9)
	assert.False(t, anim.bools[ParamIsMoving])
}

func TestFacingAnimatorStillBodyIsNotMoving(t *testing.T) {
	anim := newFakeAnimator()
	body := newFakeBody()
	body.velocity = mgl64.Vec3{0.000001, 0, 0}

	f := NewFacingAnimator(anim, body, fixedDirection{}, axisView)
	f.OnFrameTick(0.016)

	assert.False(t, anim.bools[ParamIsMoving])
	assert.Zero(t, anim.floats[ParamLateral])
	assert.Zero(t, anim.floats[ParamForward])
}

func TestFacingAnimatorMissingDependencies(t *testing.T) {
	anim := newFakeAnimator()
	assert.False(t, NewFacingAnimator(nil, newFakeBody(), fixedDirection{}, axisView).Initialize())
	assert.False(t, NewFacingAnimator(anim, nil, fixedDirection{}, axisView).Initialize())
	assert.False(t, NewFacingAnimator(anim, newFakeBody(), nil, axisView).Initialize())

	f := NewFacingAnimator(anim, newFakeBody(), fixedDirection{1, 0, 0}, nil)
	assert.True(t, f.Initialize())
	f.OnFrameTick(0.016)
	assert.Empty(t, anim.floats)
	assert.Empty(t, anim.bools)
}
