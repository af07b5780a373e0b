package kv

import (
	"context"
)

// Store is the local key-value storage every portal service persists into.
// Get returns (nil, nil) for an absent key; Delete of an absent key is not
// an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// TxStore is a Store that can run a read-modify-write atomically. The Store
// handed to fn is only valid until fn returns; nested calls reuse it.
type TxStore interface {
	Store
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
