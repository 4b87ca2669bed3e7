package entity

import (
	"fmt"

	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/prefabs"
)

const defaultZoom = 64.0

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: spec is nil")
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = defaultZoom
	}

	return build(w, "camera", []buildStep{
		nameStep(spec.Name),
		transformStep(spec.Transform),
		{name: "camera view", fn: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, component.CameraViewComponent, &component.CameraView{
				Yaw:   spec.Yaw,
				Pitch: spec.Pitch,
				Zoom:  zoom,
			})
		}},
		{name: "camera rig", fn: func(w *ecs.World, e ecs.Entity) error {
			return ecs.Add(w, e, component.CameraRigComponent, &component.CameraRig{
				TargetName: spec.Target,
				Offset:     spec.Offset.Vec3(),
			})
		}},
	})
}
