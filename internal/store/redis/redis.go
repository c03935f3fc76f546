package redis

import (
	"context"
	"errors"

	redislib "github.com/redis/go-redis/v9"

	"tokopos/internal/store"
)

// Store keeps the persisted snapshots in Redis. Values never expire; the
// store is the system of record, not a cache.
type Store struct {
	client *redislib.Client
}

func New(addr string, password string, db int) *Store {
	client := redislib.NewClient(&redislib.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &Store{client: client}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redislib.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
