package spawners

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/data"
	"ebiten-asteroids/ecs"
)

type stubTexture struct{}

func (stubTexture) Width() int  { return 72 }
func (stubTexture) Height() int { return 72 }

func newTestSpawner(t *testing.T) (*Spawner, *ecs.World, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	w := ecs.NewWorld(nil)
	w.SetResourceLoader(ecs.ResourceLoaderFunc(func(name string) (ecs.Texture, error) {
		if name == "Asteroid.png" || name == "Ship.png" {
			return stubTexture{}, nil
		}
		return nil, errors.New("no such file")
	}))
	s := NewSpawner(w, config.DefaultPlayField(), rand.New(rand.NewSource(1)), zap.New(core))
	s.SetKeyResolver(func(name string) (int, error) {
		codes := map[string]int{"W": 22, "S": 18, "A": 0, "D": 3}
		if code, ok := codes[name]; ok {
			return code, nil
		}
		return -1, fmt.Errorf("unknown key %q", name)
	})
	return s, w, logs
}

func asteroidTemplate() *data.ActorTemplate {
	return &data.ActorTemplate{
		ID:           "asteroid",
		Kind:         data.KindAsteroid,
		Texture:      "Asteroid.png",
		DrawOrder:    components.AsteroidDrawOrder,
		Radius:       40,
		Scale:        1,
		ForwardSpeed: 150,
		Tags:         []string{"rock"},
	}
}

func shipTemplate() *data.ActorTemplate {
	return &data.ActorTemplate{
		ID:              "ship",
		Kind:            data.KindShip,
		Texture:         "Ship.png",
		DrawOrder:       components.ShipDrawOrder,
		Radius:          32,
		Scale:           1,
		MaxForwardSpeed: 300,
		MaxAngularSpeed: 6,
		Keys:            data.KeyBindings{Forward: "W", Back: "S", Clockwise: "A", CounterClockwise: "D"},
	}
}

func TestAsteroid(t *testing.T) {
	s, w, _ := newTestSpawner(t)
	field := config.DefaultPlayField()

	for i := 0; i < 50; i++ {
		a := s.Asteroid(asteroidTemplate())
		pos := a.Position()
		if !field.Contains(pos.X(), pos.Y()) {
			t.Fatalf("asteroid spawned outside the play field at %v", pos)
		}
		if a.Rotation() < 0 || a.Rotation() > 2*math.Pi {
			t.Fatalf("rotation %g out of range", a.Rotation())
		}
		if !a.HasTag(data.KindAsteroid) || !a.HasTag("rock") {
			t.Fatalf("expected asteroid tags")
		}
	}

	a := w.Actors()[0]
	kinds := []ecs.Kind{}
	for _, c := range a.Components() {
		kinds = append(kinds, c.Kind())
	}
	want := []ecs.Kind{ecs.KindMove, ecs.KindSprite, ecs.KindCircle}
	if len(kinds) != len(want) {
		t.Fatalf("expected components %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("expected components %v, got %v", want, kinds)
			break
		}
	}

	c, _ := a.ComponentOfKind(ecs.KindMove)
	if mc := c.(*components.MoveComponent); mc.ForwardSpeed() != 150 {
		t.Errorf("expected forward speed 150, got %g", mc.ForwardSpeed())
	}
	c, _ = a.ComponentOfKind(ecs.KindCircle)
	if cc := c.(*components.CircleComponent); cc.Radius() != 40 {
		t.Errorf("expected radius 40, got %g", cc.Radius())
	}
	if len(w.Drawables()) != 50 || len(w.Colliders()) != 50 {
		t.Errorf("expected 50 drawables and colliders, got %d and %d", len(w.Drawables()), len(w.Colliders()))
	}
}

func TestShip(t *testing.T) {
	s, _, _ := newTestSpawner(t)
	a := s.Ship(shipTemplate())

	if a.Position().Len() != 0 || a.Rotation() != 0 {
		t.Errorf("expected ship at the origin facing right")
	}
	c, ok := a.ComponentOfKind(ecs.KindInput)
	if !ok {
		t.Fatalf("expected an input component")
	}
	ic := c.(*components.InputComponent)
	want := components.Bindings{Forward: 22, Back: 18, Clockwise: 0, CounterClockwise: 3}
	if ic.Bindings() != want {
		t.Errorf("expected bindings %+v, got %+v", want, ic.Bindings())
	}
	if ic.MaxForwardSpeed() != 300 || ic.MaxAngularSpeed() != 6 {
		t.Errorf("unexpected max speeds")
	}

	keys := make(ecs.KeyState, 32)
	keys[22] = true
	a.ProcessInput(keys)
	a.Update(0.1)
	if x := a.Position().X(); math.Abs(float64(x-30)) > 1e-4 {
		t.Errorf("expected ship to fly 30 units, got %g", x)
	}
}

func TestMissingTextureSkipsSprite(t *testing.T) {
	s, w, logs := newTestSpawner(t)
	tmpl := asteroidTemplate()
	tmpl.Texture = "Missing.png"

	a := s.Asteroid(tmpl)

	if _, ok := a.ComponentOfKind(ecs.KindSprite); ok {
		t.Errorf("expected no sprite without a texture")
	}
	if _, ok := a.ComponentOfKind(ecs.KindCircle); !ok {
		t.Errorf("expected the rest of the actor assembled")
	}
	if len(w.Drawables()) != 0 {
		t.Errorf("expected empty draw list")
	}
	if logs.FilterMessage("actor spawned without sprite").Len() != 1 {
		t.Errorf("expected the missing texture to be logged")
	}
}

func TestBadKeyBindingIsUnbound(t *testing.T) {
	s, _, logs := newTestSpawner(t)
	tmpl := shipTemplate()
	tmpl.Keys.Forward = "Nope"

	c, _ := s.Ship(tmpl).ComponentOfKind(ecs.KindInput)
	if got := c.(*components.InputComponent).Bindings().Forward; got != -1 {
		t.Errorf("expected unbound forward key, got %d", got)
	}
	if logs.FilterMessage("bad key binding").Len() != 1 {
		t.Errorf("expected the bad binding to be logged")
	}
}

type behaviorMap map[string]ecs.Behavior

func (m behaviorMap) Behavior(name string) (ecs.Behavior, error) {
	if b, ok := m[name]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("no behaviour %q", name)
}

func TestScriptedTemplate(t *testing.T) {
	s, _, logs := newTestSpawner(t)
	spin := ecs.BehaviorFuncs{Update: func(a *ecs.Actor, dt float32) {}}
	s.SetBehaviors(behaviorMap{"spin": spin})

	tmpl := asteroidTemplate()
	tmpl.Script = "spin"
	if a := s.Asteroid(tmpl); a.Behavior() == nil {
		t.Errorf("expected scripted behaviour attached")
	}

	tmpl.Script = "unknown"
	if a := s.Asteroid(tmpl); a.Behavior() != nil {
		t.Errorf("expected no behaviour for an unknown script")
	}
	if logs.FilterMessage("template script unavailable").Len() != 1 {
		t.Errorf("expected the unknown script to be logged")
	}
}

func TestSpawnAll(t *testing.T) {
	s, w, _ := newTestSpawner(t)
	table, err := data.ParseTemplates([]byte(`
- id: ship
  kind: ship
  texture: Ship.png
  count: 1
- id: rock
  kind: asteroid
  texture: Asteroid.png
  count: 3
- id: unused
  kind: asteroid
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	actors := s.SpawnAll(table)

	if len(actors) != 4 || len(w.Actors()) != 4 {
		t.Fatalf("expected 4 actors, got %d", len(actors))
	}
	if len(w.ActorsWithTag(data.KindShip)) != 1 || len(w.ActorsWithTag(data.KindAsteroid)) != 3 {
		t.Errorf("unexpected actor mix")
	}

	// equal draw orders keep spawn order, so the ship's sprite comes first
	drawables := w.Drawables()
	if len(drawables) != 4 {
		t.Fatalf("expected 4 drawables, got %d", len(drawables))
	}
	first, ok := drawables[0].(*components.SpriteComponent)
	if !ok || !first.Owner().HasTag(data.KindShip) {
		t.Errorf("expected the ship sprite first in the draw list")
	}
}

func TestSpawnDuringUpdateIsDeferred(t *testing.T) {
	s, w, _ := newTestSpawner(t)
	spawned := false
	ecs.NewActor(w, ecs.BehaviorFuncs{Update: func(a *ecs.Actor, dt float32) {
		if !spawned {
			spawned = true
			s.Asteroid(asteroidTemplate())
			if len(w.PendingActors()) != 1 {
				t.Errorf("expected the new asteroid to wait in the pending queue")
			}
		}
	}})

	w.Update(1.0 / 60)

	if len(w.Actors()) != 2 || len(w.PendingActors()) != 0 {
		t.Errorf("expected the asteroid to join at the end of the frame")
	}
}
