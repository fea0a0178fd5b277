package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-asteroids/ecs"
)

// KeyboardSnapshot samples every key once for the current frame
func KeyboardSnapshot() ecs.KeyState {
	keys := make(ecs.KeyState, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		keys[k] = ebiten.IsKeyPressed(k)
	}
	return keys
}

// ResolveKey maps a key name such as "W" or "ArrowUp" to its key code
func ResolveKey(name string) (int, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return -1, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return int(k), nil
}
