package components

import (
	"strings"

	"ebiten-asteroids/ecs"
)

// kindNameMap maps component names to their kinds
var kindNameMap = map[string]ecs.Kind{
	"Base":   ecs.KindBase,
	"Circle": ecs.KindCircle,
	"Move":   ecs.KindMove,
	"Input":  ecs.KindInput,
	"Sprite": ecs.KindSprite,
}

// KindByName returns the component kind for a name such as "Move".
// The lookup is case-insensitive.
func KindByName(name string) (ecs.Kind, bool) {
	// Try exact match first
	if kind, exists := kindNameMap[name]; exists {
		return kind, true
	}

	for kindName, kind := range kindNameMap {
		if strings.EqualFold(kindName, name) {
			return kind, true
		}
	}

	return 0, false
}

// HasComponentNamed reports whether a carries a component of the named kind
func HasComponentNamed(a *ecs.Actor, name string) bool {
	kind, ok := KindByName(name)
	if !ok {
		return false
	}
	_, found := a.ComponentOfKind(kind)
	return found
}
