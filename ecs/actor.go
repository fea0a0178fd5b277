package ecs

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// State is an actor's lifecycle state
type State uint8

const (
	StateActive State = iota
	StatePaused
	StateDead
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Behavior is the actor-specific hook run after the components of an actor.
// Actor variants (ship, asteroid, scripted actors) differ by the behaviour
// and the component set they are composed with.
type Behavior interface {
	UpdateActor(a *Actor, dt float32)
	ActorInput(a *Actor, keys KeyState)
}

// BehaviorFuncs adapts plain functions to Behavior. Nil fields are skipped.
type BehaviorFuncs struct {
	Update func(a *Actor, dt float32)
	Input  func(a *Actor, keys KeyState)
}

func (b BehaviorFuncs) UpdateActor(a *Actor, dt float32) {
	if b.Update != nil {
		b.Update(a, dt)
	}
}

func (b BehaviorFuncs) ActorInput(a *Actor, keys KeyState) {
	if b.Input != nil {
		b.Input(a, keys)
	}
}

type membership uint8

const (
	memberNone membership = iota
	memberPending
	memberLive
)

// Actor is a positioned, rotated and uniformly scaled entity owning an ordered
// set of components.
type Actor struct {
	id    ActorID
	state State
	tags  Tags

	position mgl32.Vec2
	rotation float32 // radians around z
	scale    float32

	worldTransform          mgl32.Mat4
	recomputeWorldTransform bool

	// Sorted by update order. Never modified in place: every mutation builds
	// a new slice so a running component pass keeps iterating its snapshot.
	components []Component
	behavior   Behavior

	world      *World
	membership membership
}

// NewActor creates an active actor and registers it with world. Registration
// is deferred to the end of the frame while the world is updating.
func NewActor(world *World, behavior Behavior) *Actor {
	a := &Actor{
		id:                      NewActorID(),
		state:                   StateActive,
		tags:                    make(Tags),
		scale:                   1,
		worldTransform:          mgl32.Ident4(),
		recomputeWorldTransform: true,
		behavior:                behavior,
		world:                   world,
	}
	if world != nil {
		world.AddActor(a)
	}
	return a
}

// Update runs one frame of the actor: resolve transform, components in
// update order, the behaviour hook, then resolve the transform again so
// anything moved this frame is visible to rendering.
func (a *Actor) Update(dt float32) {
	if a.state != StateActive {
		return
	}
	a.ComputeWorldTransform()
	a.updateComponents(dt)
	// a component may have killed its owner
	if a.behavior != nil && a.state == StateActive {
		a.behavior.UpdateActor(a, dt)
	}
	a.ComputeWorldTransform()
}

func (a *Actor) updateComponents(dt float32) {
	for _, c := range a.components {
		if !c.base().attached {
			continue
		}
		c.Update(dt)
	}
}

// ProcessInput forwards the key snapshot to every component, then to the behaviour.
func (a *Actor) ProcessInput(keys KeyState) {
	if a.state != StateActive {
		return
	}
	for _, c := range a.components {
		if !c.base().attached {
			continue
		}
		c.ProcessInput(keys)
	}
	if a.behavior != nil && a.state == StateActive {
		a.behavior.ActorInput(a, keys)
	}
}

// ComputeWorldTransform recomputes the cached world transform if it is stale.
// The composition applies scale, then rotation, then translation, so the
// actor pivots around its own origin.
func (a *Actor) ComputeWorldTransform() {
	if !a.recomputeWorldTransform {
		return
	}
	a.recomputeWorldTransform = false
	a.worldTransform = mgl32.Translate3D(a.position.X(), a.position.Y(), 0).
		Mul4(mgl32.HomogRotate3DZ(a.rotation)).
		Mul4(mgl32.Scale3D(a.scale, a.scale, a.scale))

	for _, c := range a.components {
		if !c.base().attached {
			continue
		}
		c.OnTransformUpdated()
	}
}

// AddComponent inserts c before the first component with a strictly greater
// update order, so equal orders run first-added-first. It reports whether c
// was attached; dead actors and foreign or already attached components are refused.
func (a *Actor) AddComponent(c Component) bool {
	b := c.base()
	if a.state == StateDead || b.owner != a || b.attached {
		return false
	}

	order := c.UpdateOrder()
	index := len(a.components)
	for i, existing := range a.components {
		if existing.UpdateOrder() > order {
			index = i
			break
		}
	}

	next := make([]Component, 0, len(a.components)+1)
	next = append(next, a.components[:index]...)
	next = append(next, c)
	next = append(next, a.components[index:]...)
	a.components = next
	b.attached = true
	return true
}

// RemoveComponent detaches c by identity. Absent components are ignored.
func (a *Actor) RemoveComponent(c Component) {
	index := -1
	for i, existing := range a.components {
		if existing == c {
			index = i
			break
		}
	}
	if index < 0 {
		return
	}

	next := make([]Component, 0, len(a.components)-1)
	next = append(next, a.components[:index]...)
	next = append(next, a.components[index+1:]...)
	a.components = next

	c.base().attached = false
	c.OnDetach()
}

// Destroy kills the actor, removes it from its world and releases every component.
func (a *Actor) Destroy() {
	a.state = StateDead
	if a.world != nil {
		a.world.RemoveActor(a)
	}

	comps := a.components
	a.components = nil
	for i := len(comps) - 1; i >= 0; i-- {
		b := comps[i].base()
		if !b.attached {
			continue
		}
		b.attached = false
		comps[i].OnDetach()
	}
}

// Components returns the attached components in update order
func (a *Actor) Components() []Component {
	out := make([]Component, len(a.components))
	copy(out, a.components)
	return out
}

// ComponentOfKind returns the first attached component of the given kind
func (a *Actor) ComponentOfKind(kind Kind) (Component, bool) {
	for _, c := range a.components {
		if c.Kind() == kind {
			return c, true
		}
	}
	return nil, false
}

func (a *Actor) SetPosition(pos mgl32.Vec2) {
	if a.state == StateDead {
		return
	}
	a.position = pos
	a.recomputeWorldTransform = true
}

func (a *Actor) SetRotation(rotation float32) {
	if a.state == StateDead {
		return
	}
	a.rotation = rotation
	a.recomputeWorldTransform = true
}

func (a *Actor) SetScale(scale float32) {
	if a.state == StateDead {
		return
	}
	a.scale = scale
	a.recomputeWorldTransform = true
}

// SetState changes the lifecycle state. Dead is terminal.
func (a *Actor) SetState(state State) {
	if a.state == StateDead {
		return
	}
	a.state = state
}

func (a *Actor) ID() ActorID                { return a.id }
func (a *Actor) State() State               { return a.state }
func (a *Actor) Position() mgl32.Vec2       { return a.position }
func (a *Actor) Rotation() float32          { return a.rotation }
func (a *Actor) Scale() float32             { return a.scale }
func (a *Actor) WorldTransform() mgl32.Mat4 { return a.worldTransform }
func (a *Actor) TransformDirty() bool       { return a.recomputeWorldTransform }
func (a *Actor) World() *World              { return a.world }
func (a *Actor) Behavior() Behavior         { return a.behavior }
func (a *Actor) SetBehavior(b Behavior)     { a.behavior = b }
func (a *Actor) AddTag(tag string)          { a.tags.Add(tag) }
func (a *Actor) HasTag(tag string) bool     { return a.tags.Has(tag) }
func (a *Actor) RemoveTag(tag string)       { a.tags.Remove(tag) }

// Forward is the unit vector the actor faces
func (a *Actor) Forward() mgl32.Vec2 {
	r := float64(a.rotation)
	return mgl32.Vec2{float32(math.Cos(r)), float32(math.Sin(r))}
}
