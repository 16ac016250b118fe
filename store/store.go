package store

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/uno-dare/server/uno/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrNotFound = errors.New("store: game not found")
	// ErrVersionConflict means another submission committed first; the
	// caller must re-read the authoritative state and no-op.
	ErrVersionConflict = errors.New("store: version conflict")
)

// Store persists GameState as a full-document snapshot keyed by game id.
// Save is last-write-wins; SaveIf commits only when the stored version still
// matches the version read at validation time.
type Store interface {
	Load(ctx context.Context, gameID string) (*game.GameState, error)
	Save(ctx context.Context, gameID string, state *game.GameState) error
	SaveIf(ctx context.Context, gameID string, state *game.GameState, expectedVersion int64) error
	Delete(ctx context.Context, gameID string) error
}

func encode(state *game.GameState) ([]byte, error) {
	return json.Marshal(state)
}

func decode(data []byte) (*game.GameState, error) {
	state := &game.GameState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	return state, nil
}
