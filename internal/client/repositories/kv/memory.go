package kv

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryStore is a map-backed TxStore. Values are copied on the way in
// and out so callers cannot alias stored bytes.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return mapView(m.data).Get(ctx, key)
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return mapView(m.data).Set(ctx, key, value)
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return mapView(m.data).Delete(ctx, key)
}

func (m *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return mapView(m.data).List(ctx)
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.data)
	return nil
}

// WithinTx hands fn a private copy of the data and swaps it in only when
// fn returns nil. Other callers block until fn is done.
func (m *MemoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft := maps.Clone(m.data)
	if err := fn(ctx, mapView(draft)); err != nil {
		return err
	}
	m.data = draft
	return nil
}

// mapView is an unsynchronized Store over a map; the caller holds the lock.
type mapView map[string][]byte

func (v mapView) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := v[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(value), nil
}

func (v mapView) Set(_ context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	v[key] = slices.Clone(value)
	return nil
}

func (v mapView) Delete(_ context.Context, key string) error {
	delete(v, key)
	return nil
}

func (v mapView) List(_ context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(v))
	for k, value := range v {
		out[k] = slices.Clone(value)
	}
	return out, nil
}

func (v mapView) Clear(_ context.Context) error {
	clear(v)
	return nil
}

func (v mapView) WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error {
	return fn(ctx, v)
}
