// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Game event types
const (
	EnemySpawned      Type = "enemy_spawned"
	EnemyDestroyed    Type = "enemy_destroyed"
	EnemyDamaged      Type = "enemy_damaged"
	PowerupSpawned    Type = "powerup_spawned"
	PowerupCollected  Type = "powerup_collected"
	ProjectileFired   Type = "projectile_fired"
	PlayerDamaged     Type = "player_damaged"
	TripleShotExpired Type = "triple_shot_expired"
	GameOver          Type = "game_over"
	GameRestarted     Type = "game_restarted"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed later.
type Subscription struct {
	ID        uint64
	EventType Type
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{ID: id, EventType: eventType}
}

// Unsubscribe removes a handler. It reports whether the subscription was found.
func (b *Bus) Unsubscribe(sub *Subscription) bool {
	if sub == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[sub.EventType]
	for i, r := range regs {
		if r.id == sub.ID {
			b.handlers[sub.EventType] = append(regs[:i:i], regs[i+1:]...)
			if len(b.handlers[sub.EventType]) == 0 {
				delete(b.handlers, sub.EventType)
			}
			return true
		}
	}
	return false
}

// HandlerCount returns the number of handlers registered for eventType.
func (b *Bus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}

// Publish sends an event to all subscribed handlers. A nil bus drops the event.
func (b *Bus) Publish(event Event) {
	if b == nil || event == nil {
		return
	}

	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// Specific event implementations

// EntityEvent reports the appearance or removal of an entity
type EntityEvent struct {
	BaseEvent
	EntityID uint64
	Kind     string
	X, Y     float64
}

// NewEntityEvent creates a new entity event
func NewEntityEvent(eventType Type, source interface{}, entityID uint64, kind string, x, y float64) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		Kind:     kind,
		X:        x,
		Y:        y,
	}
}

// DamageEvent reports a hit and the target's remaining health
type DamageEvent struct {
	BaseEvent
	TargetID  uint64
	SourceID  uint64
	Amount    int
	Remaining int
}

// NewDamageEvent creates a new damage event
func NewDamageEvent(eventType Type, source interface{}, targetID, sourceID uint64, amount, remaining int) *DamageEvent {
	return &DamageEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		TargetID:  targetID,
		SourceID:  sourceID,
		Amount:    amount,
		Remaining: remaining,
	}
}

// GameEvent reports a game-wide state change
type GameEvent struct {
	BaseEvent
	Frame uint64
	Score int
}

// NewGameEvent creates a new game event
func NewGameEvent(eventType Type, source interface{}, frame uint64, score int) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Frame: frame,
		Score: score,
	}
}
