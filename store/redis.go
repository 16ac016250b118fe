package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/uno-dare/server/uno/game"
)

const redisKeyPrefix = "uno:game:"

// Redis stores snapshots as single Redis string values. SaveIf relies on
// WATCH so the write commits only if no one touched the key after the
// version was checked.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func redisKey(gameID string) string {
	return redisKeyPrefix + gameID
}

func (r *Redis) Load(ctx context.Context, gameID string) (*game.GameState, error) {
	data, err := r.client.Get(ctx, redisKey(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func (r *Redis) Save(ctx context.Context, gameID string, state *game.GameState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKey(gameID), data, 0).Err()
}

func (r *Redis) SaveIf(ctx context.Context, gameID string, state *game.GameState, expectedVersion int64) error {
	data, err := encode(state)
	if err != nil {
		return err
	}
	key := redisKey(gameID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
			if expectedVersion != 0 {
				return ErrVersionConflict
			}
		case err != nil:
			return err
		default:
			current, err := decode(stored)
			if err != nil {
				return err
			}
			if current.Version != expectedVersion {
				return ErrVersionConflict
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrVersionConflict
	}
	return err
}

func (r *Redis) Delete(ctx context.Context, gameID string) error {
	return r.client.Del(ctx, redisKey(gameID)).Err()
}
