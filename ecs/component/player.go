package component

// Movement is the acceleration model of a kinematic character, in world
// units per second.
type Movement struct {
	MaxSpeed        float64
	AccelSpeed      float64
	DecelerateSpeed float64
}

func DefaultMovement() Movement {
	return Movement{MaxSpeed: 2.5, AccelSpeed: 12.5, DecelerateSpeed: 12.5}
}

var MovementComponent = NewComponent[Movement]()
