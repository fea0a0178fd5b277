package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"ebiten-asteroids/components"
	"ebiten-asteroids/ecs"
)

func spawnCircle(w *ecs.World, x, y, radius float32, tags ...string) *ecs.Actor {
	a := ecs.NewActor(w, nil)
	a.SetPosition(mgl32.Vec2{x, y})
	for _, tag := range tags {
		a.AddTag(tag)
	}
	components.NewCircleComponent(a).SetRadius(radius)
	return a
}

func collectCollisions(w *ecs.World) *[]ecs.CollisionEvent {
	var events []ecs.CollisionEvent
	w.GetEventManager().Subscribe(ecs.EventCollision, func(e ecs.Event) {
		events = append(events, e.(ecs.CollisionEvent))
	})
	return &events
}

func TestCollisionSystemEmitsPairs(t *testing.T) {
	w := ecs.NewWorld(nil)
	a := spawnCircle(w, 0, 0, 1)
	b := spawnCircle(w, 1.5, 0, 1)
	spawnCircle(w, 100, 0, 1)
	events := collectCollisions(w)

	NewCollisionSystem(nil).Update(w, 1)

	if len(*events) != 1 {
		t.Fatalf("expected one collision, got %d", len(*events))
	}
	got := (*events)[0]
	if got.A.Owner() != a || got.B.Owner() != b {
		t.Errorf("expected pair (a, b) in registration order")
	}
}

func TestCollisionSystemSkipsInactiveOwners(t *testing.T) {
	w := ecs.NewWorld(nil)
	spawnCircle(w, 0, 0, 1)
	paused := spawnCircle(w, 0, 0, 1)
	paused.SetState(ecs.StatePaused)
	events := collectCollisions(w)

	NewCollisionSystem(nil).Update(w, 1)

	if len(*events) != 0 {
		t.Errorf("expected paused owner ignored, got %d events", len(*events))
	}
}

func TestCollisionSystemStopsForKilledOwner(t *testing.T) {
	w := ecs.NewWorld(nil)
	first := spawnCircle(w, 0, 0, 1)
	spawnCircle(w, 0, 0, 1)
	spawnCircle(w, 0, 0, 1)

	count := 0
	w.GetEventManager().Subscribe(ecs.EventCollision, func(e ecs.Event) {
		count++
		first.SetState(ecs.StateDead)
	})

	NewCollisionSystem(nil).Update(w, 1)

	// first/second stops the first row, second/third still collides
	if count != 2 {
		t.Errorf("expected 2 collisions, got %d", count)
	}
}

func TestCollisionSystemRunsInWorldUpdate(t *testing.T) {
	w := ecs.NewWorld(nil)
	w.AddSystem(NewCollisionSystem(nil))
	events := collectCollisions(w)

	spawnCircle(w, 0, 0, 5)
	spawnCircle(w, 3, 4, 0)
	w.Update(1.0 / 60)

	if len(*events) != 1 {
		t.Errorf("expected touching circles to collide, got %d events", len(*events))
	}
}
