// Package input turns polled device state into performed/canceled events on
// named 2D actions.
package input

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/isoplayer/common"
)

type Phase int

const (
	Performed Phase = iota + 1
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// CallbackContext is delivered to action handlers.
type CallbackContext struct {
	Action string
	Phase  Phase
	Value  mgl64.Vec2
}

type Handler func(ctx CallbackContext)

// Action is a 2D input binding. Handlers are invoked synchronously from Feed.
type Action struct {
	name   string
	value  mgl64.Vec2
	nextID uint64

	performed map[uint64]Handler
	canceled  map[uint64]Handler
}

func NewAction(name string) *Action {
	return &Action{
		name:      name,
		performed: make(map[uint64]Handler),
		canceled:  make(map[uint64]Handler),
	}
}

func (a *Action) Name() string {
	return a.name
}

// Value returns the last fed value.
func (a *Action) Value() mgl64.Vec2 {
	return a.value
}

func (a *Action) OnPerformed(h Handler) *Subscription {
	return a.subscribe(a.performed, h)
}

func (a *Action) OnCanceled(h Handler) *Subscription {
	return a.subscribe(a.canceled, h)
}

func (a *Action) subscribe(set map[uint64]Handler, h Handler) *Subscription {
	if h == nil {
		return &Subscription{}
	}
	a.nextID++
	id := a.nextID
	set[id] = h
	return &Subscription{cancel: func() { delete(set, id) }}
}

// Feed delivers a freshly polled value. A changed non-zero value fires
// performed; a change to zero fires canceled with the zero vector.
func (a *Action) Feed(v mgl64.Vec2) {
	if common.NearlyZero2(v) {
		v = mgl64.Vec2{}
	}
	if v == a.value {
		return
	}
	a.value = v

	phase, handlers := Performed, a.performed
	if v == (mgl64.Vec2{}) {
		phase, handlers = Canceled, a.canceled
	}
	ctx := CallbackContext{Action: a.name, Phase: phase, Value: v}
	for _, id := range sortedIDs(handlers) {
		if h, ok := handlers[id]; ok {
			h(ctx)
		}
	}
}

func (a *Action) HandlerCount() int {
	return len(a.performed) + len(a.canceled)
}

func sortedIDs(m map[uint64]Handler) []uint64 {
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Subscription removes a handler. Unsubscribe may be called any number of
// times.
type Subscription struct {
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}
