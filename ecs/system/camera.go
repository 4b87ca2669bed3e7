package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/ecs/component"
)

// CameraRig pins the rig transform to its target plus a fixed offset.
type CameraRig struct {
	Rig    *component.Transform
	Target *component.Transform
	Offset mgl64.Vec3
}

func NewCameraRig(rig, target *component.Transform, offset mgl64.Vec3) *CameraRig {
	return &CameraRig{Rig: rig, Target: target, Offset: offset}
}

func (c *CameraRig) Initialize() bool {
	return c != nil && c.Rig != nil
}

// SetTarget changes what the rig follows; nil stops following.
func (c *CameraRig) SetTarget(target *component.Transform) {
	c.Target = target
}

func (c *CameraRig) OnFrameTick(dt float64) {}

func (c *CameraRig) OnPhysicsTick(dt float64) {
	if c.Target == nil || c.Rig == nil {
		return
	}
	c.Rig.Position = c.Target.Position.Add(c.Offset)
}
