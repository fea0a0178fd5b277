package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
)

// Epsilon is the magnitude at or below which a speed counts as zero
const Epsilon float32 = 0.001

func nearZero(v float32) bool {
	return v >= -Epsilon && v <= Epsilon
}

// MoveComponent integrates angular and forward speed into its owner's
// transform and wraps the owner around the play field.
type MoveComponent struct {
	ecs.BaseComponent
	angularSpeed float32 // radians per second
	forwardSpeed float32 // units per second
	field        config.PlayField
}

func newMoveComponent(owner *ecs.Actor, updateOrder int, kind ecs.Kind, field config.PlayField) MoveComponent {
	return MoveComponent{
		BaseComponent: ecs.NewBaseComponent(owner, updateOrder, kind),
		field:         field,
	}
}

// NewMoveComponent attaches a mover to owner
func NewMoveComponent(owner *ecs.Actor, updateOrder int, field config.PlayField) *MoveComponent {
	mc := newMoveComponent(owner, updateOrder, ecs.KindMove, field)
	owner.AddComponent(&mc)
	return &mc
}

func (m *MoveComponent) Update(dt float32) {
	owner := m.Owner()

	if !nearZero(m.angularSpeed) {
		owner.SetRotation(owner.Rotation() + m.angularSpeed*dt)
	}

	if !nearZero(m.forwardSpeed) {
		pos := owner.Position().Add(owner.Forward().Mul(m.forwardSpeed * dt))
		x, y := m.field.Wrap(pos.X(), pos.Y())
		owner.SetPosition(mgl32.Vec2{x, y})
	}
}

func (m *MoveComponent) AngularSpeed() float32 { return m.angularSpeed }
func (m *MoveComponent) ForwardSpeed() float32 { return m.forwardSpeed }

func (m *MoveComponent) SetAngularSpeed(speed float32) { m.angularSpeed = speed }
func (m *MoveComponent) SetForwardSpeed(speed float32) { m.forwardSpeed = speed }

// PlayField returns the bounds the owner wraps around
func (m *MoveComponent) PlayField() config.PlayField { return m.field }
