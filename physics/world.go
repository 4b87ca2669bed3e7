// Package physics adapts a Chipmunk2D space to the 3D body surface used by
// the gameplay systems. The horizontal XZ plane maps onto the space's XY
// plane; height is integrated alongside it.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

const DefaultGravity = 9.81

type World struct {
	// Gravity pulls along -Y for bodies that have gravity enabled.
	Gravity float64

	space  *cp.Space
	bodies []*Body
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &World{Gravity: DefaultGravity, space: space}
}

func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// NewBody adds a dynamic circle body at pos.
func (w *World) NewBody(pos mgl64.Vec3, mass, radius float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	if radius <= 0 {
		radius = 0.25
	}
	cb := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	cb.SetPosition(cp.Vector{X: pos.X(), Y: pos.Z()})

	shape := cp.NewCircle(cb, radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)

	b := &Body{
		world:   w,
		body:    cb,
		shape:   shape,
		mass:    mass,
		radius:  radius,
		y:       pos.Y(),
		gravity: true,
	}
	cb.UserData = b
	cb.SetVelocityUpdateFunc(b.updateVelocity)

	w.space.AddBody(cb)
	w.space.AddShape(shape)
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody detaches b from the space.
func (w *World) RemoveBody(b *Body) {
	if w == nil || b == nil || b.world != w {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
}

// Step integrates every body by dt.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.gravity {
			b.vy -= w.Gravity * dt
		}
		b.vy *= dampingFactor(b.damping, dt)
		b.y += b.vy * dt
	}
	w.space.Step(dt)
}

func dampingFactor(damping, dt float64) float64 {
	if damping <= 0 {
		return 1
	}
	return 1 / (1 + dt*damping)
}

// Body is a rigid body with a full 3D linear velocity.
type Body struct {
	world  *World
	body   *cp.Body
	shape  *cp.Shape
	mass   float64
	radius float64

	y       float64
	vy      float64
	gravity bool
	damping float64
	frozen  bool
}

func (b *Body) updateVelocity(cb *cp.Body, _ cp.Vector, _ float64, dt float64) {
	cp.BodyUpdateVelocity(cb, cp.Vector{}, dampingFactor(b.damping, dt), dt)
	if b.frozen {
		cb.SetAngularVelocity(0)
	}
}

func (b *Body) Velocity() mgl64.Vec3 {
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, b.vy, v.Y}
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.body.SetVelocityVector(cp.Vector{X: v.X(), Y: v.Z()})
	b.vy = v.Y()
}

func (b *Body) Position() mgl64.Vec3 {
	p := b.body.Position()
	return mgl64.Vec3{p.X, b.y, p.Y}
}

func (b *Body) SetPosition(p mgl64.Vec3) {
	b.body.SetPosition(cp.Vector{X: p.X(), Y: p.Z()})
	b.y = p.Y()
}

func (b *Body) SetGravityEnabled(enabled bool) {
	b.gravity = enabled
}

func (b *Body) GravityEnabled() bool {
	return b.gravity
}

func (b *Body) SetLinearDamping(damping float64) {
	b.damping = math.Max(0, damping)
}

func (b *Body) LinearDamping() float64 {
	return b.damping
}

// FreezeRotation gives the body infinite moment so contacts never spin it.
func (b *Body) FreezeRotation(freeze bool) {
	b.frozen = freeze
	if freeze {
		b.body.SetMoment(math.Inf(1))
		b.body.SetAngularVelocity(0)
		return
	}
	b.body.SetMoment(cp.MomentForCircle(b.mass, 0, b.radius, cp.Vector{}))
}

func (b *Body) RotationFrozen() bool {
	return b.frozen
}

func (b *Body) Angle() float64 {
	return b.body.Angle()
}
