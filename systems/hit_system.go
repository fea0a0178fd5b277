package systems

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"ebiten-asteroids/ecs"
)

// HitSystem turns ship/asteroid collisions into game consequences: the
// asteroid is destroyed, the ship loses a life and returns to the origin.
type HitSystem struct {
	lives       int
	initialized bool
	log         *zap.Logger
}

// NewHitSystem creates a hit system starting with the given number of lives
func NewHitSystem(lives int, log *zap.Logger) *HitSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &HitSystem{lives: lives, log: log}
}

// Initialize sets up event listeners
func (s *HitSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	world.GetEventManager().Subscribe(ecs.EventCollision, func(event ecs.Event) {
		s.handleCollision(world, event.(ecs.CollisionEvent))
	})

	s.initialized = true
}

func (s *HitSystem) handleCollision(world *ecs.World, event ecs.CollisionEvent) {
	ship, asteroid := event.A.Owner(), event.B.Owner()
	if !ship.HasTag(TagShip) {
		ship, asteroid = asteroid, ship
	}
	if !ship.HasTag(TagShip) || !asteroid.HasTag(TagAsteroid) {
		return
	}
	if s.lives <= 0 {
		return
	}

	asteroid.SetState(ecs.StateDead)
	s.lives--

	ship.SetPosition(mgl32.Vec2{})
	ship.SetRotation(0)

	s.log.Info("ship hit",
		zap.Uint64("asteroid", uint64(asteroid.ID())),
		zap.Int("lives", s.lives))
	GetMessageLog().Add(fmt.Sprintf("Ship hit! %d lives left", s.lives))

	world.EmitEvent(ShipHitEvent{Ship: ship, Asteroid: asteroid, LivesLeft: s.lives})
	if s.lives == 0 {
		ship.SetState(ecs.StatePaused)
		world.EmitEvent(GameOverEvent{Ship: ship})
	}
}

// Update registers with the event system if not already initialized
func (s *HitSystem) Update(world *ecs.World, dt float32) {
	if !s.initialized {
		s.Initialize(world)
	}
}

// Lives returns the remaining lives
func (s *HitSystem) Lives() int {
	return s.lives
}
