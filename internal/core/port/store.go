package port

import (
	"context"
	"time"
)

// SelectionCache holds the public projection chosen for a (zone, page) pair
// for a short TTL. Implementations are safe for concurrent use.
type SelectionCache interface {
	Get(ctx context.Context, key string) (*PublicAd, bool, error)
	Set(ctx context.Context, key string, ad *PublicAd, ttl time.Duration) error
}

// DedupGuard suppresses repeat events for a key within a window.
type DedupGuard interface {
	// Acquire registers key for ttl and reports true when it was not
	// already registered. The check and the registration are one atomic
	// operation.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release forgets key so a retried event is counted.
	Release(ctx context.Context, key string) error
}
