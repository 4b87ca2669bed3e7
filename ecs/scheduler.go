package ecs

import (
	"fmt"

	"github.com/milk9111/isoplayer/logger"
	"go.uber.org/zap"
)

// Behaviour is a unit of gameplay logic driven by the two host clocks.
// Initialize is called once before any tick; a behaviour that reports false
// is never ticked.
type Behaviour interface {
	Initialize() bool
	OnFrameTick(dt float64)
	OnPhysicsTick(dt float64)
}

// Enabler is implemented by behaviours that acquire resources or
// subscriptions for as long as they are active.
type Enabler interface {
	OnEnable()
	OnDisable()
}

const (
	DefaultFixedStep   = 1.0 / 50.0
	DefaultMaxSubSteps = 5
)

type scheduled struct {
	behaviour Behaviour
	ready     bool
	enabled   bool
}

// Scheduler runs behaviours in registration order on a fixed-rate physics
// clock and a variable-rate frame clock.
type Scheduler struct {
	FixedStep   float64
	MaxSubSteps int

	entries     []*scheduled
	accumulator float64
	playing     bool
	initialized bool
	log         *zap.Logger
}

func NewScheduler(fixedStep float64, behaviours ...Behaviour) *Scheduler {
	if fixedStep <= 0 {
		fixedStep = DefaultFixedStep
	}
	s := &Scheduler{
		FixedStep:   fixedStep,
		MaxSubSteps: DefaultMaxSubSteps,
		playing:     true,
		log:         zap.NewNop(),
	}
	for _, b := range behaviours {
		s.Add(b)
	}
	return s
}

// SetLogger routes initialization failures to l.
func (s *Scheduler) SetLogger(l *zap.Logger) {
	s.log = logger.OrNop(l)
}

// Add appends a behaviour. Behaviours added after Initialize are initialized
// immediately.
func (s *Scheduler) Add(b Behaviour) {
	if b == nil {
		return
	}
	entry := &scheduled{behaviour: b}
	s.entries = append(s.entries, entry)
	if s.initialized {
		s.initialize(entry)
	}
}

// Initialize runs every behaviour's Initialize once and enables the ones that
// succeed. It returns the behaviours that failed.
func (s *Scheduler) Initialize() []Behaviour {
	var failed []Behaviour
	for _, entry := range s.entries {
		if entry.ready {
			continue
		}
		if !s.initialize(entry) {
			failed = append(failed, entry.behaviour)
		}
	}
	s.initialized = true
	return failed
}

func (s *Scheduler) initialize(entry *scheduled) bool {
	if !entry.behaviour.Initialize() {
		s.log.Error("behaviour failed to initialize",
			zap.String("behaviour", fmt.Sprintf("%T", entry.behaviour)))
		return false
	}
	entry.ready = true
	if en, ok := entry.behaviour.(Enabler); ok {
		en.OnEnable()
		entry.enabled = true
	}
	return true
}

// SetPlaying toggles between play mode and edit mode. Edit mode runs frame
// ticks only.
func (s *Scheduler) SetPlaying(playing bool) {
	s.playing = playing
	if !playing {
		s.accumulator = 0
	}
}

func (s *Scheduler) Playing() bool {
	return s.playing
}

// PhysicsTick runs one fixed step on every ready behaviour.
func (s *Scheduler) PhysicsTick() {
	if !s.playing {
		return
	}
	for _, entry := range s.entries {
		if entry.ready {
			entry.behaviour.OnPhysicsTick(s.FixedStep)
		}
	}
}

// FrameTick runs the frame clock once.
func (s *Scheduler) FrameTick(dt float64) {
	for _, entry := range s.entries {
		if entry.ready {
			entry.behaviour.OnFrameTick(dt)
		}
	}
}

// Advance consumes frameDt of wall time: as many physics ticks as fit (capped
// at MaxSubSteps, the remainder is dropped) followed by one frame tick. It
// returns the number of physics ticks run.
func (s *Scheduler) Advance(frameDt float64) int {
	steps := 0
	if s.playing && frameDt > 0 {
		s.accumulator += frameDt
		for s.accumulator >= s.FixedStep {
			if s.MaxSubSteps > 0 && steps >= s.MaxSubSteps {
				s.accumulator = 0
				break
			}
			s.PhysicsTick()
			s.accumulator -= s.FixedStep
			steps++
		}
	}
	s.FrameTick(frameDt)
	return steps
}

// Shutdown disables every enabled behaviour. Safe to call more than once.
func (s *Scheduler) Shutdown() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		entry := s.entries[i]
		if !entry.enabled {
			continue
		}
		if en, ok := entry.behaviour.(Enabler); ok {
			en.OnDisable()
		}
		entry.enabled = false
	}
}
