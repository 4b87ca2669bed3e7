// Package component holds the plain data attached to entities and the typed
// handles used to look it up.
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component type within the process. Zero is never
// assigned.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is satisfied by every component handle, so a query can mix component
// types.
type Kind interface {
	ID() ComponentID
	Name() string
}

// ComponentHandle is the typed key for components of type T. Create one per
// type with NewComponent, at package level.
type ComponentHandle[T any] struct {
	id   ComponentID
	name string
}

func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

// Name is the Go type name of T, for logs and errors.
func (h ComponentHandle[T]) Name() string {
	return h.name
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
