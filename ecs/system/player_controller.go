package system

import (
	"github.com/milk9111/isoplayer/logger"
	"go.uber.org/zap"
)

// PlayerController initializes the player's movement and facing behaviours
// once and routes each clock to the behaviour that owns it: physics ticks to
// movement, frame ticks to animation.
type PlayerController struct {
	Movement  *KinematicController
	Animation *FacingAnimator

	log            *zap.Logger
	movementReady  bool
	animationReady bool
	enabled        bool
}

func NewPlayerController(movement *KinematicController, animation *FacingAnimator, log *zap.Logger) *PlayerController {
	return &PlayerController{
		Movement:  movement,
		Animation: animation,
		log:       logger.OrNop(log),
	}
}

// Initialize reports whether at least one behaviour came up. Each failure is
// logged; a behaviour that failed is never ticked.
func (p *PlayerController) Initialize() bool {
	if p.Movement == nil || p.Animation == nil {
		p.log.Error("player controller: behaviours are not configured",
			zap.Bool("movement", p.Movement != nil),
			zap.Bool("animation", p.Animation != nil))
		return false
	}

	p.animationReady = p.Animation.Initialize()
	if !p.animationReady {
		p.log.Error("player controller: facing animator failed to initialize")
	}
	p.movementReady = p.Movement.Initialize()
	if !p.movementReady {
		p.log.Error("player controller: kinematic controller failed to initialize")
	}
	return p.animationReady || p.movementReady
}

func (p *PlayerController) OnEnable() {
	if p.movementReady && !p.enabled {
		p.Movement.OnEnable()
		p.enabled = true
	}
}

func (p *PlayerController) OnDisable() {
	if p.enabled {
		p.Movement.OnDisable()
		p.enabled = false
	}
}

func (p *PlayerController) OnFrameTick(dt float64) {
	if p.animationReady {
		p.Animation.OnFrameTick(dt)
	}
}

func (p *PlayerController) OnPhysicsTick(dt float64) {
	if p.movementReady {
		p.Movement.OnPhysicsTick(dt)
	}
}
