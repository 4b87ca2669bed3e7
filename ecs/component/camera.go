package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewpoint exposes the basis of the active camera. Implementations are
// queried fresh every tick.
type Viewpoint interface {
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}

// CameraView is a fixed-orientation camera. Yaw rotates around +Y starting at
// +Z, Pitch tilts the view down. Both are in degrees.
type CameraView struct {
	Yaw   float64
	Pitch float64
	Zoom  float64
}

func (c *CameraView) Forward() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	pitch := mgl64.DegToRad(c.Pitch)
	return mgl64.Vec3{
		math.Cos(pitch) * math.Sin(yaw),
		-math.Sin(pitch),
		math.Cos(pitch) * math.Cos(yaw),
	}
}

func (c *CameraView) Right() mgl64.Vec3 {
	yaw := mgl64.DegToRad(c.Yaw)
	return mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

func (c *CameraView) Up() mgl64.Vec3 {
	return c.Forward().Cross(c.Right())
}

// CameraRig marks the entity moved by the camera rig and names its target.
type CameraRig struct {
	TargetName string
	Offset     mgl64.Vec3
}

var (
	CameraViewComponent = NewComponent[CameraView]()
	CameraRigComponent  = NewComponent[CameraRig]()
)

// Project maps world point p seen from eye to screen offsets from the screen
// center in pixels (Y grows downward) and a depth along the view direction.
func (c *CameraView) Project(eye, p mgl64.Vec3) (x, y, depth float64) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	rel := p.Sub(eye)
	return rel.Dot(c.Right()) * zoom, -rel.Dot(c.Up()) * zoom, rel.Dot(c.Forward())
}
