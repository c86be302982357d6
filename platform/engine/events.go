package engine

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// appendEvent records a domain occurrence on the aggregate. The log is
// append-only; nothing in the engine ever reads it back for rule
// enforcement.
func appendEvent(g *models.GameState, evType string, payload map[string]interface{}) {
	g.Events = append(g.Events, models.GameEvent{
		ID:        uuid.NewV4().String(),
		GameID:    g.GameID,
		Type:      evType,
		Payload:   payload,
		Timestamp: time.Now().UnixNano() / int64(time.Millisecond),
	})
}

// EventsSince returns events strictly newer than the given timestamp,
// in append order, for incremental delivery.
func EventsSince(g *models.GameState, ts int64) []models.GameEvent {
	var out []models.GameEvent
	for _, ev := range g.Events {
		if ev.Timestamp > ts {
			out = append(out, ev)
		}
	}
	return out
}

// Subscriber is the wildcard event type.
const SubscribeAll = "*"

type subscriber struct {
	gameID string
	types  map[string]bool
	ch     chan models.GameEvent
}

// EventBus fans engine events out to transport-side consumers (socket
// broadcasts, audio cues). Delivery is best effort: a consumer that
// stops draining its channel is dropped.
type EventBus struct {
	mu   sync.Mutex
	subs map[*subscriber]bool
}

func NewEventBus() *EventBus {
	return &EventBus{subs: map[*subscriber]bool{}}
}

// Subscribe registers for events of the given types on one game.
// Passing SubscribeAll (or nothing) receives every type.
func (b *EventBus) Subscribe(gameID string, types ...string) (<-chan models.GameEvent, func()) {
	s := &subscriber{
		gameID: gameID,
		types:  map[string]bool{},
		ch:     make(chan models.GameEvent, 64),
	}
	if len(types) == 0 {
		s.types[SubscribeAll] = true
	}
	for _, t := range types {
		s.types[t] = true
	}
	b.mu.Lock()
	b.subs[s] = true
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if b.subs[s] {
			delete(b.subs, s)
			close(s.ch)
		}
		b.mu.Unlock()
	}
	return s.ch, cancel
}

// Publish delivers one event to matching subscribers.
func (b *EventBus) Publish(ev models.GameEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for s := range b.subs {
		if s.gameID != ev.GameID {
			continue
		}
		if !s.types[SubscribeAll] && !s.types[ev.Type] {
			continue
		}
		select {
		case s.ch <- ev:
		default:
			delete(b.subs, s)
			close(s.ch)
		}
	}
}
