package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isoplayer/ecs"
	"github.com/milk9111/isoplayer/ecs/component"
	"github.com/milk9111/isoplayer/ecs/entity"
	"github.com/milk9111/isoplayer/ecs/render"
	"github.com/milk9111/isoplayer/ecs/system"
	"github.com/milk9111/isoplayer/input"
	"github.com/milk9111/isoplayer/logger"
	"github.com/milk9111/isoplayer/physics"
	"github.com/milk9111/isoplayer/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 960
	baseHeight = 540

	// maxFrameDt bounds the wall time fed to the scheduler after a stall.
	maxFrameDt = 0.25
)

type Options struct {
	Spec  *prefabs.GameSpec
	Log   *zap.Logger
	Debug bool
	Edit  bool
	Watch bool
}

type Game struct {
	log   *zap.Logger
	debug bool

	width, height int
	background    color.Color

	world     *ecs.World
	physics   *physics.World
	scheduler *ecs.Scheduler
	renderer  *render.BillboardRenderSystem
	controls  *Controls
	watcher   *prefabs.Watcher

	player   ecs.Entity
	camera   ecs.Entity
	movement *system.KinematicController
	rig      *system.CameraRig

	last     time.Time
	subSteps int
	closed   bool
}

func NewGame(opts Options) (*Game, error) {
	spec := opts.Spec
	if spec == nil {
		return nil, errors.New("game: spec is nil")
	}

	g := &Game{
		log:        logger.OrNop(opts.Log),
		debug:      opts.Debug,
		width:      spec.Width,
		height:     spec.Height,
		background: spec.Background.ColorOr(colornames.Darkslategray),
		world:      ecs.NewWorld(),
		physics:    physics.NewWorld(),
	}
	if g.width <= 0 || g.height <= 0 {
		g.width, g.height = baseWidth, baseHeight
	}

	g.scheduler = ecs.NewScheduler(spec.FixedStep)
	if spec.MaxSubSteps > 0 {
		g.scheduler.MaxSubSteps = spec.MaxSubSteps
	}
	g.scheduler.SetLogger(g.log)

	if err := g.buildEntities(spec); err != nil {
		return nil, err
	}
	if err := g.buildBehaviours(opts.Edit); err != nil {
		return nil, err
	}

	renderer, err := render.NewBillboardRenderSystem(g.world)
	if err != nil {
		return nil, fmt.Errorf("game: renderer: %w", err)
	}
	g.renderer = renderer

	if failed := g.scheduler.Initialize(); len(failed) > 0 {
		g.log.Warn("some behaviours are inactive", zap.Int("count", len(failed)))
	}
	g.scheduler.SetPlaying(!opts.Edit)

	if opts.Watch {
		g.startWatcher()
	}

	g.log.Info("game ready",
		zap.Int("entities", len(ecs.Entities(g.world))),
		zap.Float64("fixed_step", g.scheduler.FixedStep),
		zap.Bool("edit", opts.Edit))
	return g, nil
}

func (g *Game) buildEntities(spec *prefabs.GameSpec) error {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.player, err = entity.NewPlayer(g.world, g.physics, playerSpec, render.LoadTexture)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.camera, err = entity.NewCamera(g.world, cameraSpec)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	for _, prop := range spec.Props {
		if _, err := entity.NewProp(g.world, prop, render.LoadTexture); err != nil {
			return fmt.Errorf("game: %w", err)
		}
	}
	return nil
}

// buildBehaviours wires the player, camera and billboard behaviours into the
// scheduler. Physics ticks run in registration order: player movement, then
// the physics step, then the camera.
func (g *Game) buildBehaviours(edit bool) error {
	view, ok := ecs.Get(g.world, g.camera, component.CameraViewComponent)
	if !ok {
		return fmt.Errorf("game: camera %s has no view", g.camera)
	}

	in, _ := ecs.Get(g.world, g.player, component.InputComponent)
	body, _ := ecs.Get(g.world, g.player, component.PhysicsBodyComponent)
	movement, _ := ecs.Get(g.world, g.player, component.MovementComponent)
	anim, _ := ecs.Get(g.world, g.player, component.AnimatorComponent)
	if in == nil || body == nil || anim == nil {
		return fmt.Errorf("game: player %s is missing components", g.player)
	}

	move := input.NewAction(in.Action)
	g.controls = NewControls(move)

	g.movement = system.NewKinematicController(body.Body, input.NewSampler(move), view, movement)
	facing := system.NewFacingAnimator(anim, body.Body, g.movement, view)
	g.scheduler.Add(system.NewPlayerController(g.movement, facing, g.log))

	g.scheduler.Add(system.NewPhysicsSystem(g.world, g.physics))

	rigTransform, _ := ecs.Get(g.world, g.camera, component.TransformComponent)
	rig, ok := ecs.Get(g.world, g.camera, component.CameraRigComponent)
	if !ok {
		return fmt.Errorf("game: camera %s has no rig", g.camera)
	}
	var target *component.Transform
	if e, ok := entity.FindByName(g.world, rig.TargetName); ok {
		target, _ = ecs.Get(g.world, e, component.TransformComponent)
	} else {
		g.log.Warn("camera target not found", zap.String("target", rig.TargetName))
	}
	g.rig = system.NewCameraRig(rigTransform, target, rig.Offset)
	g.scheduler.Add(g.rig)

	g.scheduler.Add(system.NewSpriteAnimationSystem(g.world))

	// Edit mode may run with containers stripped; play mode expects the
	// builders' containers.
	for _, e := range g.world.Query(component.SpriteRendererComponent) {
		g.scheduler.Add(system.NewBillboardQuadBuilder(g.world, e, edit))
	}
	return nil
}

func (g *Game) startWatcher() {
	if _, err := os.Stat(prefabs.Dir); err != nil {
		g.log.Warn("prefab watch disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		return
	}
	w, err := prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		g.log.Warn("prefab watch disabled", zap.Error(err))
		return
	}
	g.watcher = w
	g.log.Info("watching prefabs", zap.String("dir", prefabs.Dir))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.scheduler.SetPlaying(!g.scheduler.Playing())
		g.log.Debug("play mode toggled", zap.Bool("playing", g.scheduler.Playing()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	g.reloadPrefabs()
	g.controls.Update(g.world)

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), maxFrameDt)
	}
	g.last = now
	g.subSteps = g.scheduler.Advance(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.renderer.Draw(screen)

	if !g.debug {
		return
	}
	mode := "play"
	if !g.scheduler.Playing() {
		mode = "edit"
	}
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  mode: %s  steps: %d  billboards: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), mode, g.subSteps, g.renderer.Count())
	if in, ok := ecs.Get(g.world, g.player, component.InputComponent); ok {
		msg += fmt.Sprintf("\nmove: (%.2f, %.2f)", in.Move.X(), in.Move.Y())
	}
	if body, ok := ecs.Get(g.world, g.player, component.PhysicsBodyComponent); ok && body.Body != nil {
		v := body.Body.Velocity()
		msg += fmt.Sprintf("  velocity: (%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Close disables every behaviour and stops the prefab watcher.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.scheduler.Shutdown()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close prefab watcher", zap.Error(err))
		}
	}
}
