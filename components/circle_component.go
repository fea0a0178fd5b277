package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"ebiten-asteroids/ecs"
)

// CircleComponent is a collision circle centred on its owner. The radius
// scales with the owner's uniform scale and ignores rotation.
type CircleComponent struct {
	ecs.BaseComponent
	radius float32
	world  *ecs.World
}

// NewCircleComponent attaches a circle to owner and registers it as one of
// the world's colliders
func NewCircleComponent(owner *ecs.Actor) *CircleComponent {
	c := &CircleComponent{
		BaseComponent: ecs.NewBaseComponent(owner, DefaultUpdateOrder, ecs.KindCircle),
	}
	if owner.AddComponent(c) && owner.World() != nil {
		c.world = owner.World()
		c.world.AddCollider(c)
	}
	return c
}

// SetRadius sets the local-space radius
func (c *CircleComponent) SetRadius(radius float32) {
	c.radius = radius
}

// LocalRadius returns the radius before the owner's scale is applied
func (c *CircleComponent) LocalRadius() float32 {
	return c.radius
}

// Radius returns the world-space radius
func (c *CircleComponent) Radius() float32 {
	return c.Owner().Scale() * c.radius
}

// Center returns the world-space centre
func (c *CircleComponent) Center() mgl32.Vec2 {
	return c.Owner().Position()
}

func (c *CircleComponent) OnDetach() {
	if c.world != nil {
		c.world.RemoveCollider(c)
		c.world = nil
	}
}

// Intersect reports whether two circles overlap or touch. Squared distances
// keep the test exact and symmetric.
func Intersect(a, b ecs.Collider) bool {
	diff := a.Center().Sub(b.Center())
	distSq := diff.Dot(diff)

	radiiSum := a.Radius() + b.Radius()
	radiiSq := radiiSum * radiiSum

	return distSq <= radiiSq
}
