package input

import "github.com/go-gl/mathgl/mgl64"

// StickDeadzone is the analog stick magnitude below which the stick is
// ignored.
const StickDeadzone = 0.2

// Compose merges digital directions and an analog stick into one move value.
// Up is +Y. A stick outside deadzone wins over the keys. Results never exceed
// unit length.
func Compose(left, right, up, down bool, stick mgl64.Vec2, deadzone float64) mgl64.Vec2 {
	if l := stick.Len(); l > deadzone {
		if l > 1 {
			stick = stick.Mul(1 / l)
		}
		return stick
	}

	var v mgl64.Vec2
	if left {
		v[0]--
	}
	if right {
		v[0]++
	}
	if up {
		v[1]++
	}
	if down {
		v[1]--
	}
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}
