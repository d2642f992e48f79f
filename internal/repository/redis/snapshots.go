package redis

import (
	"context"
	"encoding/json"

	"github.com/kelvish/storetix/internal/domain"
	redisx "github.com/kelvish/storetix/internal/redis"
	"github.com/redis/go-redis/v9"
)

// CartSnapshots persists the cart item list, and nothing else, for each
// session. Snapshots carry no TTL: the cart must survive a reload.
type CartSnapshots struct {
	rdb *redis.Client
}

func NewCartSnapshots(rdb *redis.Client) *CartSnapshots {
	return &CartSnapshots{rdb: rdb}
}

func (s *CartSnapshots) Load(ctx context.Context, cartID string) ([]domain.CartItem, bool, error) {
	raw, err := s.rdb.Get(ctx, redisx.KeyCart(cartID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, err
	}

	return items, true, nil
}

func (s *CartSnapshots) Save(ctx context.Context, cartID string, items []domain.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, redisx.KeyCart(cartID), b, 0).Err()
}

func (s *CartSnapshots) Delete(ctx context.Context, cartID string) error {
	return s.rdb.Del(ctx, redisx.KeyCart(cartID)).Err()
}

// UserSnapshots persists the "user" entry: login flag plus profile.
type UserSnapshots struct {
	rdb *redis.Client
}

func NewUserSnapshots(rdb *redis.Client) *UserSnapshots {
	return &UserSnapshots{rdb: rdb}
}

func (s *UserSnapshots) Load(ctx context.Context, sessionID string) (domain.UserState, bool, error) {
	raw, err := s.rdb.Get(ctx, redisx.KeyUser(sessionID)).Result()
	if err == redis.Nil {
		return domain.UserState{}, false, nil
	}
	if err != nil {
		return domain.UserState{}, false, err
	}

	var state domain.UserState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.UserState{}, false, err
	}

	return state, true, nil
}

func (s *UserSnapshots) Save(ctx context.Context, sessionID string, state domain.UserState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, redisx.KeyUser(sessionID), b, 0).Err()
}

func (s *UserSnapshots) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, redisx.KeyUser(sessionID)).Err()
}
