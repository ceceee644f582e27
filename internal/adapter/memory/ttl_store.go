package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"adzone/internal/core/port"
)

// sweepEvery is how many writes pass between expiry sweeps.
const sweepEvery = 1024

type entry[V any] struct {
	value   V
	expires time.Time
}

// ttlMap is a concurrent map whose entries expire lazily. Reads and
// conditional writes are lock-free.
type ttlMap[V any] struct {
	m      sync.Map
	now    func() time.Time
	writes atomic.Int64
}

func (t *ttlMap[V]) load(key string) (V, bool) {
	var zero V
	raw, ok := t.m.Load(key)
	if !ok {
		return zero, false
	}
	e := raw.(*entry[V])
	if !t.now().Before(e.expires) {
		t.m.CompareAndDelete(key, raw)
		return zero, false
	}
	return e.value, true
}

func (t *ttlMap[V]) store(key string, v V, ttl time.Duration) {
	t.m.Store(key, &entry[V]{value: v, expires: t.now().Add(ttl)})
	t.maybeSweep()
}

// storeIfAbsent stores v unless a live entry exists for key.
func (t *ttlMap[V]) storeIfAbsent(key string, v V, ttl time.Duration) bool {
	fresh := &entry[V]{value: v, expires: t.now().Add(ttl)}
	for {
		raw, loaded := t.m.LoadOrStore(key, fresh)
		if !loaded {
			t.maybeSweep()
			return true
		}
		if t.now().Before(raw.(*entry[V]).expires) {
			return false
		}
		if t.m.CompareAndSwap(key, raw, fresh) {
			return true
		}
	}
}

func (t *ttlMap[V]) delete(key string) {
	t.m.Delete(key)
}

func (t *ttlMap[V]) maybeSweep() {
	if t.writes.Add(1)%sweepEvery != 0 {
		return
	}
	now := t.now()
	t.m.Range(func(k, raw any) bool {
		if !now.Before(raw.(*entry[V]).expires) {
			t.m.CompareAndDelete(k, raw)
		}
		return true
	})
}

// DedupGuard implements port.DedupGuard in process memory.
type DedupGuard struct {
	keys ttlMap[struct{}]
}

var _ port.DedupGuard = (*DedupGuard)(nil)

// NewDedupGuard returns a guard driven by now; nil means time.Now.
func NewDedupGuard(now func() time.Time) *DedupGuard {
	if now == nil {
		now = time.Now
	}
	g := &DedupGuard{}
	g.keys.now = now
	return g
}

// Acquire registers key for ttl unless it is already registered.
func (g *DedupGuard) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	return g.keys.storeIfAbsent(key, struct{}{}, ttl), nil
}

// Release forgets key.
func (g *DedupGuard) Release(_ context.Context, key string) error {
	g.keys.delete(key)
	return nil
}

// SelectionCache implements port.SelectionCache in process memory.
type SelectionCache struct {
	ads ttlMap[port.PublicAd]
}

var _ port.SelectionCache = (*SelectionCache)(nil)

// NewSelectionCache returns a cache driven by now; nil means time.Now.
func NewSelectionCache(now func() time.Time) *SelectionCache {
	if now == nil {
		now = time.Now
	}
	c := &SelectionCache{}
	c.ads.now = now
	return c
}

// Get returns a copy of the cached selection for key.
func (c *SelectionCache) Get(_ context.Context, key string) (*port.PublicAd, bool, error) {
	ad, ok := c.ads.load(key)
	if !ok {
		return nil, false, nil
	}
	return &ad, true, nil
}

// Set caches a copy of ad for ttl.
func (c *SelectionCache) Set(_ context.Context, key string, ad *port.PublicAd, ttl time.Duration) error {
	c.ads.store(key, *ad, ttl)
	return nil
}
