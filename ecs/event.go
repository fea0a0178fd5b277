package ecs

// EventType identifies different types of events
type EventType string

const (
	EventActorAdded   EventType = "actor_added"
	EventActorRemoved EventType = "actor_removed"
	EventCollision    EventType = "collision"
)

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// ActorAddedEvent is emitted when an actor joins the live registry
type ActorAddedEvent struct {
	Actor *Actor
}

func (e ActorAddedEvent) Type() EventType { return EventActorAdded }

// ActorRemovedEvent is emitted when an actor leaves the world
type ActorRemovedEvent struct {
	Actor *Actor
}

func (e ActorRemovedEvent) Type() EventType { return EventActorRemoved }

// CollisionEvent is emitted for every pair of intersecting colliders
type CollisionEvent struct {
	A, B Collider
}

func (e CollisionEvent) Type() EventType { return EventCollision }

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies a handler registration for Unsubscribe
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes a handler registration. Unknown IDs are ignored.
func (em *EventManager) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	// Create a new slice so an Emit in progress keeps its handler list
	remaining := make([]subscription, 0, len(subs))
	for _, s := range subs {
		if s.id != id {
			remaining = append(remaining, s)
		}
	}

	if len(remaining) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = remaining
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	subs, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	for _, s := range subs {
		s.handler(event)
	}
}
