package flow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "flow:"

// RedisStore keeps sessions in Redis with a TTL, so a wizard survives an API
// restart and works across instances.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	s.UpdatedAt = time.Now()

	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisKeyPrefix+s.ID, payload, r.ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, redisKeyPrefix+id).Err()
}
