package systems

import (
	"ebiten-asteroids/data"
	"ebiten-asteroids/ecs"
)

// Every spawned actor is tagged with its template kind
const (
	TagShip     = data.KindShip
	TagAsteroid = data.KindAsteroid
)

// Event type constants
const (
	EventShipHit  ecs.EventType = "ship_hit"
	EventGameOver ecs.EventType = "game_over"
)

// ShipHitEvent is emitted when the ship runs into an asteroid
type ShipHitEvent struct {
	Ship      *ecs.Actor
	Asteroid  *ecs.Actor
	LivesLeft int
}

func (e ShipHitEvent) Type() ecs.EventType { return EventShipHit }

// GameOverEvent is emitted when the ship has no lives left
type GameOverEvent struct {
	Ship *ecs.Actor
}

func (e GameOverEvent) Type() ecs.EventType { return EventGameOver }
