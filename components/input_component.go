package components

import (
	"ebiten-asteroids/config"
	"ebiten-asteroids/ecs"
)

// InputComponent is a MoveComponent whose speeds are driven by four keys
type InputComponent struct {
	MoveComponent

	maxForwardSpeed float32
	maxAngularSpeed float32

	forwardKey          int
	backKey             int
	clockwiseKey        int
	counterClockwiseKey int
}

// NewInputComponent attaches a key-driven mover to owner. Keys default to
// code -1, which is never pressed, until bound.
func NewInputComponent(owner *ecs.Actor, updateOrder int, field config.PlayField) *InputComponent {
	ic := &InputComponent{
		MoveComponent:       newMoveComponent(owner, updateOrder, ecs.KindInput, field),
		forwardKey:          -1,
		backKey:             -1,
		clockwiseKey:        -1,
		counterClockwiseKey: -1,
	}
	owner.AddComponent(ic)
	return ic
}

// ProcessInput turns the held keys into forward and angular speeds
func (ic *InputComponent) ProcessInput(keys ecs.KeyState) {
	var forwardSpeed float32
	if keys.Pressed(ic.forwardKey) {
		forwardSpeed += ic.maxForwardSpeed
	}
	if keys.Pressed(ic.backKey) {
		forwardSpeed -= ic.maxForwardSpeed
	}
	ic.SetForwardSpeed(forwardSpeed)

	var angularSpeed float32
	if keys.Pressed(ic.clockwiseKey) {
		angularSpeed += ic.maxAngularSpeed
	}
	if keys.Pressed(ic.counterClockwiseKey) {
		angularSpeed -= ic.maxAngularSpeed
	}
	ic.SetAngularSpeed(angularSpeed)
}

// Bindings groups the four movement keys by key code
type Bindings struct {
	Forward          int
	Back             int
	Clockwise        int
	CounterClockwise int
}

// Bind sets all four movement keys
func (ic *InputComponent) Bind(b Bindings) {
	ic.forwardKey = b.Forward
	ic.backKey = b.Back
	ic.clockwiseKey = b.Clockwise
	ic.counterClockwiseKey = b.CounterClockwise
}

// Bindings returns the current key codes
func (ic *InputComponent) Bindings() Bindings {
	return Bindings{
		Forward:          ic.forwardKey,
		Back:             ic.backKey,
		Clockwise:        ic.clockwiseKey,
		CounterClockwise: ic.counterClockwiseKey,
	}
}

func (ic *InputComponent) MaxForwardSpeed() float32 { return ic.maxForwardSpeed }
func (ic *InputComponent) MaxAngularSpeed() float32 { return ic.maxAngularSpeed }

func (ic *InputComponent) SetMaxForwardSpeed(speed float32) { ic.maxForwardSpeed = speed }
func (ic *InputComponent) SetMaxAngularSpeed(speed float32) { ic.maxAngularSpeed = speed }
