package app

import "sync/atomic"

// Handle identifies a typed singleton resource.
type Handle[T any] struct {
	id uint32
}

var nextResourceID atomic.Uint32

// NewResource allocates a handle for a resource type. Handles are meant to
// be created once, as package-level variables.
func NewResource[T any]() Handle[T] {
	return Handle[T]{id: nextResourceID.Add(1)}
}

// Valid reports whether the handle was allocated through NewResource.
func (h Handle[T]) Valid() bool {
	return h.id != 0
}

// cell stores one resource with a mutation counter. Consumers compare the
// counter against the value they last observed to detect changes.
type cell struct {
	value   any
	version uint64
}

// Insert stores a resource wholesale and bumps its version.
func Insert[T any](a *App, h Handle[T], value T) {
	if a == nil || !h.Valid() {
		return
	}
	c, ok := a.resources[h.id]
	if !ok {
		c = &cell{}
		a.resources[h.id] = c
	}
	c.value = value
	c.version++
}

// Get returns the resource for h.
func Get[T any](a *App, h Handle[T]) (T, bool) {
	var zero T
	if a == nil || !h.Valid() {
		return zero, false
	}
	c, ok := a.resources[h.id]
	if !ok {
		return zero, false
	}
	value, ok := c.value.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

// Touch bumps the version for h after in-place mutation of a shared
// resource, so change-gated systems pick it up next tick.
func Touch[T any](a *App, h Handle[T]) {
	if a == nil || !h.Valid() {
		return
	}
	if c, ok := a.resources[h.id]; ok {
		c.version++
	}
}

// Version returns the mutation counter for h, or 0 if the resource was
// never inserted.
func Version[T any](a *App, h Handle[T]) uint64 {
	if a == nil || !h.Valid() {
		return 0
	}
	c, ok := a.resources[h.id]
	if !ok {
		return 0
	}
	return c.version
}
