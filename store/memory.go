package store

import (
	"context"
	"sync"

	"github.com/awesome-cap/hashmap"

	"github.com/uno-dare/server/uno/game"
)

// Memory keeps encoded snapshots in process memory. The mutex serializes
// SaveIf's read-compare-write; plain reads go through the concurrent map.
type Memory struct {
	mu    sync.Mutex
	games *hashmap.HashMap
}

func NewMemory() *Memory {
	return &Memory{games: hashmap.New()}
}

func (m *Memory) Load(ctx context.Context, gameID string) (*game.GameState, error) {
	v, ok := m.games.Get(gameID)
	if !ok {
		return nil, ErrNotFound
	}
	return decode(v.([]byte))
}

func (m *Memory) Save(ctx context.Context, gameID string, state *game.GameState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	m.games.Set(gameID, data)
	return nil
}

func (m *Memory) SaveIf(ctx context.Context, gameID string, state *game.GameState, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.games.Get(gameID); ok {
		stored, err := decode(v.([]byte))
		if err != nil {
			return err
		}
		if stored.Version != expectedVersion {
			return ErrVersionConflict
		}
	} else if expectedVersion != 0 {
		return ErrVersionConflict
	}
	return m.Save(ctx, gameID, state)
}

func (m *Memory) Delete(ctx context.Context, gameID string) error {
	m.games.Del(gameID)
	return nil
}
