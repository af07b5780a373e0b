package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadJSON decodes the document under key into v. It reports false, with v
// untouched, when the key is absent.
func LoadJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode kv[%s]: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v and stores it under key, replacing any previous value.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode kv[%s]: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// Update runs fn atomically when s is a TxStore and directly otherwise.
func Update(ctx context.Context, s Store, fn func(ctx context.Context, s Store) error) error {
	if ts, ok := s.(TxStore); ok {
		return ts.WithinTx(ctx, fn)
	}
	return fn(ctx, s)
}
