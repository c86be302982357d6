package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ZebLawrence/monopoly-web-game-sub000/app/models"
)

// Storage is the injected persistence port. LoadGameState returns an
// empty blob when the game is unknown.
type Storage interface {
	LoadGameState(id string) (string, error)
	SaveGameState(id string, blob string) error
	DeleteGameState(id string) error
}

// ActionResult is the outcome of one processed action. Err is set and
// State nil when the action was rejected; nothing is persisted then.
type ActionResult struct {
	OK    bool              `json:"ok"`
	State *models.GameState `json:"state,omitempty"`
	Err   *GameError        `json:"error,omitempty"`
}

// Engine turns player intents into validated state transitions. All
// rule state lives in the GameState blob behind the Storage port; the
// engine itself only holds the RNG seam, the event bus and the
// per-game write locks.
type Engine struct {
	store Storage
	rng   RNG
	bus   *EventBus

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithRNG replaces the randomness source, for deterministic tests.
func WithRNG(rng RNG) Option {
	return func(e *Engine) { e.rng = rng }
}

func New(store Storage, opts ...Option) *Engine {
	rand.Seed(time.Now().UnixNano())
	e := &Engine{
		store: store,
		rng:   rand.Intn,
		bus:   NewEventBus(),
		locks: map[string]*sync.Mutex{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Bus exposes the event bus for transport-side subscribers.
func (e *Engine) Bus() *EventBus { return e.bus }

// lockFor returns the per-game mutex enforcing single-writer-per-game.
// Actions for different games run in parallel; actions for the same
// game serialize in arrival order.
func (e *Engine) lockFor(gameID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[gameID] = l
	}
	return l
}

// Forget drops the lock entry once a game is finished and archived.
func (e *Engine) Forget(gameID string) {
	e.mu.Lock()
	delete(e.locks, gameID)
	e.mu.Unlock()
}
