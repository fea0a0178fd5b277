package ecs

// System is world-level logic run once per frame after the actor pass and
// the pending-actor flush
type System interface {
	Update(world *World, dt float32)
}

// SystemFunc adapts a function to System
type SystemFunc func(world *World, dt float32)

func (f SystemFunc) Update(world *World, dt float32) { f(world, dt) }
