package ecs

// Kind identifies the concrete component variant
type Kind uint8

const (
	KindBase Kind = iota
	KindCircle
	KindMove
	KindInput
	KindSprite
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindCircle:
		return "circle"
	case KindMove:
		return "move"
	case KindInput:
		return "input"
	case KindSprite:
		return "sprite"
	}
	return "unknown"
}

// KeyState is a per-frame snapshot of pressed keys indexed by key code
type KeyState []bool

// Pressed reports whether the key is down. Codes outside the snapshot are not pressed.
func (k KeyState) Pressed(code int) bool {
	return code >= 0 && code < len(k) && k[code]
}

// Component is a unit of per-actor behaviour. The set of variants is closed:
// every implementation embeds BaseComponent.
type Component interface {
	// Update runs once per frame in ascending update order
	Update(dt float32)
	// ProcessInput receives the frame's key snapshot
	ProcessInput(keys KeyState)
	// OnTransformUpdated is called after the owner recomputed its world transform
	OnTransformUpdated()
	// OnDetach is called once when the component leaves its owner
	OnDetach()

	UpdateOrder() int
	Kind() Kind
	Owner() *Actor

	base() *BaseComponent
}

// BaseComponent carries the owner back-reference and update order. Its hooks are no-ops.
type BaseComponent struct {
	owner       *Actor
	updateOrder int
	kind        Kind
	attached    bool
}

// NewBaseComponent prepares the embedded part of a component variant. It does
// not attach anything; the variant constructor calls owner.AddComponent.
func NewBaseComponent(owner *Actor, updateOrder int, kind Kind) BaseComponent {
	return BaseComponent{
		owner:       owner,
		updateOrder: updateOrder,
		kind:        kind,
	}
}

// NewComponent creates a behaviourless component attached to owner
func NewComponent(owner *Actor, updateOrder int) *BaseComponent {
	c := &BaseComponent{
		owner:       owner,
		updateOrder: updateOrder,
		kind:        KindBase,
	}
	owner.AddComponent(c)
	return c
}

func (c *BaseComponent) Update(dt float32)          {}
func (c *BaseComponent) ProcessInput(keys KeyState) {}
func (c *BaseComponent) OnTransformUpdated()        {}
func (c *BaseComponent) OnDetach()                  {}

func (c *BaseComponent) UpdateOrder() int { return c.updateOrder }
func (c *BaseComponent) Kind() Kind       { return c.kind }
func (c *BaseComponent) Owner() *Actor    { return c.owner }

// Attached reports whether the component is currently in its owner's list
func (c *BaseComponent) Attached() bool { return c.attached }

func (c *BaseComponent) base() *BaseComponent { return c }
