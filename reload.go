package main

import (
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/ecs/entity"
	"github.com/milk9111/isoplayer/prefabs"
	"go.uber.org/zap"
)

// reloadPrefabs applies prefab files changed on disk since the last update.
// Only tuning values are re-applied; entities are not rebuilt.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.log.Warn("prefab watcher error", zap.Error(err))
		}
	default:
	}

	for _, path := range g.watcher.Drain() {
		g.reloadPrefab(path)
	}
}

func (g *Game) reloadPrefab(path string) {
	switch prefabs.Name(path) {
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			g.log.Warn("reload player prefab", zap.Error(err))
			return
		}
		m := entity.MovementFromSpec(spec.Movement)
		g.movement.Tune(m)
		g.log.Info("player movement reloaded",
			zap.Float64("max_speed", m.MaxSpeed),
			zap.Float64("acc_speed", m.AccelSpeed),
			zap.Float64("decelerate_speed", m.DecelerateSpeed))

	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			g.log.Warn("reload camera prefab", zap.Error(err))
			return
		}
		if view, ok := ecs.Get(g.world, g.camera, component.CameraViewComponent); ok {
			view.Yaw, view.Pitch = spec.Yaw, spec.Pitch
			if spec.Zoom > 0 {
				view.Zoom = spec.Zoom
			}
		}
		g.rig.Offset = spec.Offset.Vec3()
		g.log.Info("camera reloaded", zap.Float64("yaw", spec.Yaw), zap.Float64("pitch", spec.Pitch))

	default:
		g.log.Debug("prefab change ignored", zap.String("path", path))
	}
}
