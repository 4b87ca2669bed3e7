package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/common"
	"github.com/milk9111/isoplayer/ecs/component"
)

// Animator parameter names written by FacingAnimator.
const (
	ParamLateral  = "X"
	ParamForward  = "Y"
	ParamIsMoving = "isMoving"
)

// DirectionSource publishes the current movement direction.
type DirectionSource interface {
	Direction() mgl64.Vec3
}

// FacingAnimator feeds the movement direction, seen from the camera, into
// the animator's blend parameters.
type FacingAnimator struct {
	Animator component.AnimatorTarget
	Body     component.Body
	Movement DirectionSource
	View     component.Viewpoint
}

func NewFacingAnimator(animator component.AnimatorTarget, body component.Body, movement DirectionSource, view component.Viewpoint) *FacingAnimator {
	return &FacingAnimator{Animator: animator, Body: body, Movement: movement, View: view}
}

func (f *FacingAnimator) Initialize() bool {
	return f != nil && f.Animator != nil && f.Body != nil && f.Movement != nil
}

func (f *FacingAnimator) OnPhysicsTick(dt float64) {}

func (f *FacingAnimator) OnFrameTick(dt float64) {
	if f.Animator == nil || f.Body == nil || f.Movement == nil || f.View == nil {
		return
	}
	dir := common.NormalizeOrZero(f.Movement.Direction())
	forward := common.Flatten(f.View.Forward())
	right := common.Flatten(f.View.Right())

	f.Animator.SetFloat(ParamLateral, dir.Dot(right))
	f.Animator.SetFloat(ParamForward, dir.Dot(forward))
	f.Animator.SetBool(ParamIsMoving, f.Body.Velocity().Len() > common.Epsilon)
}
