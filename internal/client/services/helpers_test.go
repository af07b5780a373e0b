package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/investportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investportal/internal/logging"
	"github.com/stretchr/testify/require"
)

// failingStore wraps a Store and fails the selected operations. It is not
// a TxStore, so kv.Update runs callbacks against it directly.
type failingStore struct {
	kv.Store
	getErr    error
	setErr    error
	deleteErr error
}

func (f *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.Store.Delete(ctx, key)
}

func putRaw(t *testing.T, s kv.Store, key, value string) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), key, []byte(value)))
}

func getRaw(t *testing.T, s kv.Store, key string) string {
	t.Helper()
	v, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return string(v)
}

// stepClock advances one minute on every call.
type stepClock struct{ t time.Time }

func newStepClock() *stepClock {
	return &stepClock{t: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestSavedLogins(store kv.Store, limit int) (*SavedLogins, *stepClock) {
	sl := NewSavedLogins(store, limit, logging.Nop{})
	clock := newStepClock()
	sl.now = clock.Now
	sl.newID = seqIDs()
	return sl, clock
}
