package ecs

import "sync/atomic"

// ActorID is a unique identifier for an actor
type ActorID uint64

var nextActorID uint64 = 0

// NewActorID generates a new unique actor ID
func NewActorID() ActorID {
	return ActorID(atomic.AddUint64(&nextActorID, 1))
}

// Tags can be used for quick identification (e.g., "ship", "asteroid")
type Tags map[string]bool

// Add adds a tag
func (t Tags) Add(tag string) {
	t[tag] = true
}

// Has checks if a specific tag is present
func (t Tags) Has(tag string) bool {
	return t[tag]
}

// Remove removes a tag
func (t Tags) Remove(tag string) {
	delete(t, tag)
}
