package room

import (
	"context"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"

	"github.com/uno-dare/server/consts"
	"github.com/uno-dare/server/model"
	"github.com/uno-dare/server/uno/game"
)

// Registry tracks the live coordinators, one per game.
type Registry struct {
	cfg   Config
	games *hashmap.HashMap
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{cfg: cfg.fill(), games: hashmap.New()}
}

// Create seats the roster, deals the opening round and starts the owner
// loop.
func (r *Registry) Create(ctx context.Context, roster []model.RosterPlayer) (*Coordinator, error) {
	if len(roster) < consts.MinPlayers || len(roster) > consts.MaxPlayers {
		return nil, consts.ErrorsPlayersInvalid
	}
	players := make([]game.Player, len(roster))
	for i, p := range roster {
		if p.ID == "" || p.Name == "" {
			return nil, consts.ErrorsInputInvalid
		}
		players[i] = game.Player{ID: p.ID, Name: p.Name, IsAI: p.IsAI, IsHost: p.IsHost}
	}
	id := uuid.NewString()
	c, err := New(id, players, r.cfg)
	if err != nil {
		return nil, err
	}
	r.games.Set(id, c)
	c.Start(ctx)
	return c, nil
}

func (r *Registry) Get(gameID string) (*Coordinator, error) {
	if v, ok := r.games.Get(gameID); ok {
		return v.(*Coordinator), nil
	}
	return nil, consts.ErrorsGameNotFound
}

func (r *Registry) Remove(ctx context.Context, gameID string) {
	if v, ok := r.games.Get(gameID); ok {
		v.(*Coordinator).Close()
		r.games.Del(gameID)
		_ = r.cfg.Store.Delete(ctx, gameID)
	}
}
