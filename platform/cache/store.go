package cache

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

// Blobs live a day; abandoned games simply expire.
const stateTTLSeconds = 24 * 60 * 60

// GameStateStore keeps serialized game state in redis, one blob per
// game. It satisfies the engine's Storage port.
type GameStateStore struct {
	pool *redis.Pool
}

func NewGameStateStore(pool *redis.Pool) *GameStateStore {
	return &GameStateStore{pool: pool}
}

func stateKey(id string) string {
	return fmt.Sprintf("game.state.%s", id)
}

// LoadGameState returns the blob, or empty when the game is unknown.
func (s *GameStateStore) LoadGameState(id string) (string, error) {
	conn := s.pool.Get()
	defer conn.Close()
	data, err := redis.String(conn.Do("GET", stateKey(id)))
	if err == redis.ErrNil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

// SaveGameState writes the blob and refreshes its TTL.
func (s *GameStateStore) SaveGameState(id string, blob string) error {
	conn := s.pool.Get()
	defer conn.Close()
	_, err := conn.Do("SETEX", stateKey(id), stateTTLSeconds, blob)
	return err
}

func (s *GameStateStore) DeleteGameState(id string) error {
	conn := s.pool.Get()
	defer conn.Close()
	_, err := conn.Do("DEL", stateKey(id))
	return err
}
