package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

var ErrNotFound = errors.New("not found")

// Persisted state layout: one full-collection snapshot per key.
const (
	KeyProducts     = "products"
	KeyCustomers    = "customers"
	KeySales        = "sales"
	KeyExpenses     = "expenses"
	KeyUser         = "user"
	KeySessionToken = "session_token"
)

// KV is a durable string-keyed byte store. Get returns ErrNotFound when the
// key is absent. There is no transactional guarantee across keys; callers
// order their writes.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Read decodes the value stored under key into T. An absent key returns def
// silently; an unreadable payload also returns def but logs a warning.
// Falling back to the default is preferable to crashing the caller.
func Read[T any](ctx context.Context, kv KV, key string, def T) T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[store] WARN: read %q failed, using default: %v", key, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Printf("[store] WARN: payload under %q is unreadable, using default: %v", key, err)
		return def
	}
	return value
}

// Write serializes the full value and stores it under key. No partial
// updates; this is called synchronously after every mutation.
func Write[T any](ctx context.Context, kv KV, key string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, payload); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}
