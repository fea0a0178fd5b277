package spawners

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"ebiten-asteroids/components"
	"ebiten-asteroids/config"
	"ebiten-asteroids/data"
	"ebiten-asteroids/ecs"
)

// BehaviorSource looks up scripted behaviours by name
type BehaviorSource interface {
	Behavior(name string) (ecs.Behavior, error)
}

// KeyResolver maps a key name to a key code
type KeyResolver func(name string) (int, error)

// Spawner assembles actors from templates
type Spawner struct {
	world     *ecs.World
	field     config.PlayField
	rng       *rand.Rand
	resolve   KeyResolver
	behaviors BehaviorSource
	log       *zap.Logger
}

// NewSpawner creates a spawner placing actors inside field
func NewSpawner(world *ecs.World, field config.PlayField, rng *rand.Rand, log *zap.Logger) *Spawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Spawner{
		world: world,
		field: field,
		rng:   rng,
		log:   log,
	}
}

// SetKeyResolver sets how ship key names become key codes
func (s *Spawner) SetKeyResolver(resolve KeyResolver) {
	s.resolve = resolve
}

// SetBehaviors sets where template scripts are looked up
func (s *Spawner) SetBehaviors(src BehaviorSource) {
	s.behaviors = src
}

// SpawnAll spawns Count actors for every template, in file order
func (s *Spawner) SpawnAll(table *data.TemplateTable) []*ecs.Actor {
	var actors []*ecs.Actor
	for _, t := range table.All() {
		for i := 0; i < t.Count; i++ {
			if a := s.Spawn(t); a != nil {
				actors = append(actors, a)
			}
		}
	}
	s.log.Info("spawned actors", zap.Int("count", len(actors)), zap.Int("templates", table.Count()))
	return actors
}

// Spawn creates one actor from t
func (s *Spawner) Spawn(t *data.ActorTemplate) *ecs.Actor {
	switch t.Kind {
	case data.KindAsteroid:
		return s.Asteroid(t)
	case data.KindShip:
		return s.Ship(t)
	}
	s.log.Warn("unknown actor kind", zap.String("template", t.ID), zap.String("kind", t.Kind))
	return nil
}

// Asteroid creates a drifting asteroid at a random position and heading
func (s *Spawner) Asteroid(t *data.ActorTemplate) *ecs.Actor {
	a := s.newActor(t)

	x := s.field.MinX + s.rng.Float32()*(s.field.MaxX-s.field.MinX)
	y := s.field.MinY + s.rng.Float32()*(s.field.MaxY-s.field.MinY)
	a.SetPosition(mgl32.Vec2{x, y})
	a.SetRotation(s.rng.Float32() * 2 * math.Pi)

	s.attachSprite(a, t)

	mc := components.NewMoveComponent(a, components.MoveUpdateOrder, s.field)
	mc.SetForwardSpeed(t.ForwardSpeed)
	mc.SetAngularSpeed(t.AngularSpeed)

	components.NewCircleComponent(a).SetRadius(t.Radius)
	return a
}

// Ship creates the player ship at the origin facing right
func (s *Spawner) Ship(t *data.ActorTemplate) *ecs.Actor {
	a := s.newActor(t)

	s.attachSprite(a, t)

	ic := components.NewInputComponent(a, components.InputUpdateOrder, s.field)
	ic.SetMaxForwardSpeed(t.MaxForwardSpeed)
	ic.SetMaxAngularSpeed(t.MaxAngularSpeed)
	ic.Bind(components.Bindings{
		Forward:          s.keyCode(t, t.Keys.Forward),
		Back:             s.keyCode(t, t.Keys.Back),
		Clockwise:        s.keyCode(t, t.Keys.Clockwise),
		CounterClockwise: s.keyCode(t, t.Keys.CounterClockwise),
	})

	components.NewCircleComponent(a).SetRadius(t.Radius)
	return a
}

func (s *Spawner) newActor(t *data.ActorTemplate) *ecs.Actor {
	a := ecs.NewActor(s.world, s.behavior(t))
	a.SetScale(t.Scale)
	a.AddTag(t.Kind)
	for _, tag := range t.Tags {
		a.AddTag(tag)
	}
	return a
}

func (s *Spawner) behavior(t *data.ActorTemplate) ecs.Behavior {
	if t.Script == "" {
		return nil
	}
	if s.behaviors == nil {
		s.log.Warn("template script ignored, no script engine", zap.String("template", t.ID), zap.String("script", t.Script))
		return nil
	}
	b, err := s.behaviors.Behavior(t.Script)
	if err != nil {
		s.log.Warn("template script unavailable", zap.String("template", t.ID), zap.Error(err))
		return nil
	}
	return b
}

// attachSprite adds a sprite when the texture loads. A missing texture is
// logged and the actor goes without one.
func (s *Spawner) attachSprite(a *ecs.Actor, t *data.ActorTemplate) {
	if t.Texture == "" {
		return
	}
	tex, err := s.world.GetOrLoad(t.Texture)
	if err != nil {
		s.log.Warn("actor spawned without sprite", zap.String("template", t.ID), zap.Error(err))
		return
	}
	components.NewSpriteComponent(a, t.DrawOrder).SetTexture(tex)
}

func (s *Spawner) keyCode(t *data.ActorTemplate, name string) int {
	if name == "" {
		return -1
	}
	if s.resolve == nil {
		s.log.Warn("key binding ignored, no key resolver", zap.String("template", t.ID), zap.String("key", name))
		return -1
	}
	code, err := s.resolve(name)
	if err != nil {
		s.log.Warn("bad key binding", zap.String("template", t.ID), zap.Error(err))
		return -1
	}
	return code
}
