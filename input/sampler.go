package input

import "github.com/go-gl/mathgl/mgl64"

// Sampler keeps the latest value of a move action. It only listens between
// Enable and Disable.
type Sampler struct {
	action *Action
	value  mgl64.Vec2
	subs   []*Subscription
}

func NewSampler(action *Action) *Sampler {
	return &Sampler{action: action}
}

func (s *Sampler) Action() *Action {
	if s == nil {
		return nil
	}
	return s.action
}

// Enable subscribes to both phases of the action and picks up the value the
// action currently holds. Calling it twice is a no-op.
func (s *Sampler) Enable() {
	if s == nil || s.action == nil || len(s.subs) > 0 {
		return
	}
	s.subs = append(s.subs,
		s.action.OnPerformed(s.changed),
		s.action.OnCanceled(s.changed),
	)
	s.value = s.action.Value()
}

// Disable drops both subscriptions and clears the stored value.
func (s *Sampler) Disable() {
	if s == nil {
		return
	}
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
	s.value = mgl64.Vec2{}
}

func (s *Sampler) Enabled() bool {
	return s != nil && len(s.subs) > 0
}

func (s *Sampler) Value() mgl64.Vec2 {
	if s == nil {
		return mgl64.Vec2{}
	}
	return s.value
}

func (s *Sampler) changed(ctx CallbackContext) {
	s.value = ctx.Value
}
