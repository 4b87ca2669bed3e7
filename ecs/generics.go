package ecs

import "github.com/milk9111/isoplayer/ecs/component"

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if w == nil {
		return component.ErrEntityNotAlive
	}
	if value == nil {
		return component.ErrNilComponent
	}
	return w.addComponent(e, handle, value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.ID(), false).Has(e)
}

// Get returns the stored pointer, so callers mutate the component in place.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	value, ok := w.getComponent(e, handle.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

// ForEach calls fn for every entity holding a component of handle's kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.ID(), false)
	for _, e := range append([]Entity(nil), s.Entities()...) {
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}
