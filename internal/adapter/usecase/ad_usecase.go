package usecase

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// DefaultSelectionTTL bounds how long a (zone, page) selection is reused.
const DefaultSelectionTTL = 5 * time.Minute

// AdUseCase provides business logic for ad selection and event processing.
// It orchestrates domain and repositories to implement the AdUseCase interface.
type AdUseCase struct {
	repo    port.AdRepository
	zones   *ZoneRegistry
	cache   port.SelectionCache
	dedup   port.DedupGuard
	metrics *metrics.Engine
	logger  *slog.Logger

	now          func() time.Time
	draw         func(n int64) int64
	newToken     func() string
	selectionTTL time.Duration
}

var _ port.AdUseCase = (*AdUseCase)(nil)

// Option customises an AdUseCase.
type Option func(*AdUseCase)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(u *AdUseCase) { u.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Engine) Option {
	return func(u *AdUseCase) { u.metrics = m }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *AdUseCase) { u.now = now }
}

// WithRandom replaces the uniform draw used by the auction. draw(n) must
// return a value in [0, n).
func WithRandom(draw func(n int64) int64) Option {
	return func(u *AdUseCase) { u.draw = draw }
}

// WithSelectionTTL overrides DefaultSelectionTTL.
func WithSelectionTTL(ttl time.Duration) Option {
	return func(u *AdUseCase) {
		if ttl > 0 {
			u.selectionTTL = ttl
		}
	}
}

// WithZoneRegistry shares an existing registry instead of building one.
func WithZoneRegistry(z *ZoneRegistry) Option {
	return func(u *AdUseCase) { u.zones = z }
}

// NewAdUseCase creates a new usecase. The cache and dedup guard are owned by
// the caller and shared by every request.
func NewAdUseCase(repo port.AdRepository, cache port.SelectionCache, dedup port.DedupGuard, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		repo:         repo,
		cache:        cache,
		dedup:        dedup,
		logger:       slog.New(slog.DiscardHandler),
		now:          time.Now,
		draw:         rand.Int64N,
		newToken:     uuid.NewString,
		selectionTTL: DefaultSelectionTTL,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.zones == nil {
		u.zones = NewZoneRegistry(repo)
	}
	return u
}
