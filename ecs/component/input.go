package component

import "github.com/go-gl/mathgl/mgl64"

// Input mirrors the latest sampled move vector for an entity so systems that
// do not own the sampler can read it.
type Input struct {
	Action string
	Move   mgl64.Vec2
}

var InputComponent = NewComponent[Input]()
