package ecs

import (
	"fmt"

	"go.uber.org/zap"
)

// World owns the actor registry, the draw list, the collider set and the
// texture cache, and runs the per-frame update pass.
//
// Actors created while the pass is running wait in pendingActors and join
// the registry when the pass ends. The registry slice is never modified in
// place, so removing an actor mid-pass leaves the running snapshot intact.
type World struct {
	actors         []*Actor
	pendingActors  []*Actor
	actorIndex     map[ActorID]*Actor
	updatingActors bool

	drawables []Drawable
	colliders []Collider

	textures map[string]Texture
	loader   ResourceLoader

	systems      []System
	eventManager *EventManager

	log *zap.Logger
}

// NewWorld creates an empty world. A nil logger disables logging.
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		actors:       make([]*Actor, 0),
		actorIndex:   make(map[ActorID]*Actor),
		textures:     make(map[string]Texture),
		eventManager: NewEventManager(),
		log:          log,
	}
}

// SetResourceLoader sets the collaborator GetOrLoad delegates cache misses to
func (w *World) SetResourceLoader(loader ResourceLoader) {
	w.loader = loader
}

// AddActor registers a. While an update pass is running the actor is queued
// and joins the registry at the end of the pass.
func (w *World) AddActor(a *Actor) {
	if a.membership != memberNone || a.state == StateDead {
		return
	}
	a.world = w
	w.actorIndex[a.id] = a

	if w.updatingActors {
		a.membership = memberPending
		w.pendingActors = append(w.pendingActors, a)
		return
	}
	a.membership = memberLive
	w.actors = append(w.actors, a)
	w.eventManager.Emit(ActorAddedEvent{Actor: a})
}

// RemoveActor removes a by identity from the pending queue or the registry.
// Absent actors and actors registered with another world are ignored.
func (w *World) RemoveActor(a *Actor) {
	if a.world != w {
		return
	}
	switch a.membership {
	case memberPending:
		w.pendingActors = without(w.pendingActors, a)
	case memberLive:
		w.actors = without(w.actors, a)
	default:
		return
	}
	a.membership = memberNone
	delete(w.actorIndex, a.id)
	w.eventManager.Emit(ActorRemovedEvent{Actor: a})
}

// without returns a fresh slice lacking target, keeping the order of the rest
func without(list []*Actor, target *Actor) []*Actor {
	out := make([]*Actor, 0, len(list))
	for _, a := range list {
		if a != target {
			out = append(out, a)
		}
	}
	return out
}

// ProcessInput hands the key snapshot to every live actor
func (w *World) ProcessInput(keys KeyState) {
	w.updatingActors = true
	for _, a := range w.actors {
		if a.membership != memberLive {
			continue
		}
		a.ProcessInput(keys)
	}
	w.updatingActors = false
}

// Update runs one frame: the actor pass over a snapshot of the registry,
// the pending flush, the dead-actor sweep, then every system.
func (w *World) Update(dt float32) {
	w.updatingActors = true
	for _, a := range w.actors {
		// removed (or removed and re-queued) after the snapshot was taken
		if a.membership != memberLive {
			continue
		}
		a.Update(dt)
	}
	w.updatingActors = false

	w.flushPending()
	w.destroyDead()

	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

func (w *World) flushPending() {
	pending := w.pendingActors
	w.pendingActors = nil
	for _, a := range pending {
		if a.membership != memberPending {
			continue
		}
		a.membership = memberLive
		w.actors = append(w.actors, a)
		w.eventManager.Emit(ActorAddedEvent{Actor: a})
	}
}

func (w *World) destroyDead() {
	var dead []*Actor
	for _, a := range w.actors {
		if a.state == StateDead {
			dead = append(dead, a)
		}
	}
	for _, a := range dead {
		w.log.Debug("destroying dead actor", zap.Uint64("actor", uint64(a.id)))
		a.Destroy()
	}
}

// IsUpdating reports whether an actor pass is in progress
func (w *World) IsUpdating() bool {
	return w.updatingActors
}

// Actors returns a copy of the live registry in iteration order
func (w *World) Actors() []*Actor {
	out := make([]*Actor, len(w.actors))
	copy(out, w.actors)
	return out
}

// PendingActors returns a copy of the actors waiting for the end of the pass
func (w *World) PendingActors() []*Actor {
	out := make([]*Actor, len(w.pendingActors))
	copy(out, w.pendingActors)
	return out
}

// ActorByID resolves an ID to a registered (live or pending) actor
func (w *World) ActorByID(id ActorID) (*Actor, bool) {
	a, ok := w.actorIndex[id]
	return a, ok
}

// ActorsWithTag returns the live actors carrying tag, in registry order
func (w *World) ActorsWithTag(tag string) []*Actor {
	actors := make([]*Actor, 0)
	for _, a := range w.actors {
		if a.HasTag(tag) {
			actors = append(actors, a)
		}
	}
	return actors
}

// AddDrawable inserts d after every entry whose draw order is <= its own
func (w *World) AddDrawable(d Drawable) {
	order := d.DrawOrder()
	index := len(w.drawables)
	for i, existing := range w.drawables {
		if order < existing.DrawOrder() {
			index = i
			break
		}
	}
	w.drawables = append(w.drawables, nil)
	copy(w.drawables[index+1:], w.drawables[index:])
	w.drawables[index] = d
}

// RemoveDrawable removes d by identity
func (w *World) RemoveDrawable(d Drawable) {
	for i, existing := range w.drawables {
		if existing == d {
			w.drawables = append(w.drawables[:i], w.drawables[i+1:]...)
			return
		}
	}
}

// Drawables returns a copy of the draw list in draw order
func (w *World) Drawables() []Drawable {
	out := make([]Drawable, len(w.drawables))
	copy(out, w.drawables)
	return out
}

// DrawCommands resolves the draw list into the frame's commands
func (w *World) DrawCommands() []DrawCommand {
	cmds := make([]DrawCommand, 0, len(w.drawables))
	for _, d := range w.drawables {
		if cmd, ok := d.DrawCommand(); ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Render submits the draw commands to r
func (w *World) Render(r Renderer) {
	r.Submit(w.DrawCommands())
}

// AddCollider registers c for collision queries
func (w *World) AddCollider(c Collider) {
	for _, existing := range w.colliders {
		if existing == c {
			return
		}
	}
	w.colliders = append(w.colliders, c)
}

// RemoveCollider removes c by identity
func (w *World) RemoveCollider(c Collider) {
	for i, existing := range w.colliders {
		if existing == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return
		}
	}
}

// Colliders returns a copy of the current collider set
func (w *World) Colliders() []Collider {
	out := make([]Collider, len(w.colliders))
	copy(out, w.colliders)
	return out
}

// GetOrLoad returns the cached texture for name, loading and caching it on a
// miss. Failed loads wrap ErrResourceNotFound and are not cached.
func (w *World) GetOrLoad(name string) (Texture, error) {
	if tex, ok := w.textures[name]; ok {
		return tex, nil
	}
	if w.loader == nil {
		return nil, fmt.Errorf("%w: %s: no loader", ErrResourceNotFound, name)
	}

	tex, err := w.loader.Load(name)
	if err != nil {
		w.log.Warn("texture load failed", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceNotFound, name, err)
	}
	if tex == nil || tex.Width() <= 0 || tex.Height() <= 0 {
		return nil, fmt.Errorf("%w: %s: empty texture", ErrResourceNotFound, name)
	}

	w.textures[name] = tex
	w.log.Debug("texture loaded", zap.String("name", name), zap.Int("width", tex.Width()), zap.Int("height", tex.Height()))
	return tex, nil
}

// AddSystem adds a system run at the end of every Update
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// Logger returns the world's logger
func (w *World) Logger() *zap.Logger {
	return w.log
}
