package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/common"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/input"
)

// KinematicController accelerates a body along camera-relative input and
// brakes it when input stops.
type KinematicController struct {
	Body     component.Body
	Input    *input.Sampler
	View     component.Viewpoint
	Settings *component.Movement

	canMove   bool
	direction mgl64.Vec3
}

func NewKinematicController(body component.Body, sampler *input.Sampler, view component.Viewpoint, settings *component.Movement) *KinematicController {
	if settings == nil {
		defaults := component.DefaultMovement()
		settings = &defaults
	}
	return &KinematicController{
		Body:     body,
		Input:    sampler,
		View:     view,
		Settings: settings,
		canMove:  true,
	}
}

// Initialize configures the body for direct velocity control. It fails when
// the body or the input sampler is missing.
func (c *KinematicController) Initialize() bool {
	if c == nil || c.Body == nil || c.Input == nil {
		return false
	}
	if c.Settings == nil {
		defaults := component.DefaultMovement()
		c.Settings = &defaults
	}
	c.Body.SetGravityEnabled(false)
	c.Body.SetLinearDamping(0)
	c.Body.FreezeRotation(true)
	return true
}

func (c *KinematicController) OnEnable() {
	c.Input.Enable()
}

func (c *KinematicController) OnDisable() {
	c.Input.Disable()
}

// Direction is the last non-zero movement direction: unit length, or zero
// before any input arrived.
func (c *KinematicController) Direction() mgl64.Vec3 {
	return c.direction
}

func (c *KinematicController) CanMove() bool {
	return c.canMove
}

func (c *KinematicController) SetCanMove(canMove bool) {
	c.canMove = canMove
}

// Tune replaces the movement settings in place.
func (c *KinematicController) Tune(m component.Movement) {
	m.MaxSpeed = math.Max(0, m.MaxSpeed)
	m.AccelSpeed = math.Max(0, m.AccelSpeed)
	m.DecelerateSpeed = math.Max(0, m.DecelerateSpeed)
	if c.Settings == nil {
		c.Settings = &m
		return
	}
	*c.Settings = m
}

func (c *KinematicController) OnFrameTick(dt float64) {}

func (c *KinematicController) OnPhysicsTick(dt float64) {
	if c.Body == nil || c.Input == nil || c.Settings == nil {
		return
	}
	in := c.Input.Value()
	if c.canMove {
		c.updateVelocity(in, dt)
	}
	c.updateDrag(in, dt)
	c.clampSpeed()
}

func (c *KinematicController) updateVelocity(in mgl64.Vec2, dt float64) {
	forward, right := cameraBasis(c.View)
	target := common.NormalizeOrZero(forward.Mul(in.Y()).Add(right.Mul(in.X())))
	if common.IsZero3(target) {
		return
	}
	c.direction = target

	c.Body.SetVelocity(c.Body.Velocity().Add(target.Mul(c.Settings.AccelSpeed * dt)))
}

// clampSpeed holds |velocity| <= MaxSpeed even when the cap was lowered while
// the body coasts.
func (c *KinematicController) clampSpeed() {
	v := c.Body.Velocity()
	if v.Len() > c.Settings.MaxSpeed {
		c.Body.SetVelocity(v.Normalize().Mul(c.Settings.MaxSpeed))
	}
}

func (c *KinematicController) updateDrag(in mgl64.Vec2, dt float64) {
	if !common.NearlyZero2(in) && c.canMove {
		return
	}
	old := c.Body.Velocity()
	if old.Len() <= common.Epsilon {
		return
	}
	v := old.Sub(old.Normalize().Mul(c.Settings.DecelerateSpeed * dt))
	for i := range v {
		if crossesZero(old[i], v[i]) {
			v[i] = 0
		}
	}
	c.Body.SetVelocity(v)
}

// crossesZero reports whether braking took a component from one side of zero
// to the other, or to within Epsilon of it.
func crossesZero(before, after float64) bool {
	return (before > 0 && after < common.Epsilon) || (before < 0 && after > -common.Epsilon)
}

// cameraBasis returns the camera's forward and right flattened onto the
// ground plane. A nil view uses the world axes.
func cameraBasis(view component.Viewpoint) (forward, right mgl64.Vec3) {
	if view == nil {
		return common.WorldForward, common.WorldRight
	}
	forward = common.Flatten(view.Forward())
	right = common.Flatten(view.Right())
	switch {
	case common.IsZero3(forward) && common.IsZero3(right):
		return common.WorldForward, common.WorldRight
	case common.IsZero3(forward):
		forward = right.Cross(common.WorldUp)
	case common.IsZero3(right):
		right = common.WorldUp.Cross(forward)
	}
	return forward, right
}
