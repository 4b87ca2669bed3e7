package component

import "github.com/go-gl/mathgl/mgl64"

// Body is the rigid-body surface gameplay code needs: linear velocity and the
// switches a kinematic character sets once at startup.
type Body interface {
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	SetGravityEnabled(enabled bool)
	SetLinearDamping(damping float64)
	FreezeRotation(freeze bool)
}

// PhysicsBody binds an entity to its runtime body and collider settings.
type PhysicsBody struct {
	Body   Body
	Mass   float64
	Radius float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
