package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// table is the shared access gate for a memory store: one mutex making each
// call atomic, plus an optional random delay before the critical section. The
// original tables this mimics throttled the same way, which widens race
// windows enough for concurrency tests to bite.
type table struct {
	mu         sync.Mutex
	maxLatency time.Duration
}

type Option func(*table)

// WithLatency makes every store call sleep a random duration up to d before
// touching the map.
func WithLatency(d time.Duration) Option {
	return func(t *table) { t.maxLatency = d }
}

func newTable(opts ...Option) *table {
	t := &table{}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *table) enter(ctx context.Context) error {
	if t.maxLatency > 0 {
		select {
		case <-time.After(time.Duration(rand.Int63n(int64(t.maxLatency)))):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	t.mu.Lock()
	return nil
}

func (t *table) leave() { t.mu.Unlock() }
