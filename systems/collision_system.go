package systems

import (
	"go.uber.org/zap"

	"ebiten-asteroids/components"
	"ebiten-asteroids/ecs"
)

// CollisionSystem tests every pair of colliders once per frame and emits a
// CollisionEvent for each intersecting pair. Colliders whose owner is not
// active are skipped, including owners killed by a handler mid-pass.
type CollisionSystem struct {
	log *zap.Logger
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(log *zap.Logger) *CollisionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollisionSystem{log: log}
}

func (s *CollisionSystem) Update(world *ecs.World, dt float32) {
	colliders := world.Colliders()
	for i := 0; i < len(colliders); i++ {
		a := colliders[i]
		if a.Owner().State() != ecs.StateActive {
			continue
		}
		for j := i + 1; j < len(colliders); j++ {
			// a handler may have killed a earlier in this loop
			if a.Owner().State() != ecs.StateActive {
				break
			}
			b := colliders[j]
			if b.Owner().State() != ecs.StateActive {
				continue
			}
			if !components.Intersect(a, b) {
				continue
			}
			s.log.Debug("collision",
				zap.Uint64("a", uint64(a.Owner().ID())),
				zap.Uint64("b", uint64(b.Owner().ID())))
			world.EmitEvent(ecs.CollisionEvent{A: a, B: b})
		}
	}
}
