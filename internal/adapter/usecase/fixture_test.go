package usecase

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"adzone/internal/adapter/memory"
	"adzone/internal/core/domain"
)

var epoch = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	repo  *memory.AdRepository
	dedup *memory.DedupGuard
	cache *memory.SelectionCache
	clock *testClock
	uc    *AdUseCase
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	clock := &testClock{now: epoch}
	f := &fixture{
		repo:  memory.NewAdRepository(),
		dedup: memory.NewDedupGuard(clock.Now),
		cache: memory.NewSelectionCache(clock.Now),
		clock: clock,
	}
	f.repo.PutZone(domain.Zone{ID: 1, Name: "header", Type: domain.PlacementBannerTop, Width: 728, Height: 90, Active: true})
	f.repo.PutZone(domain.Zone{ID: 2, Name: "retired", Type: domain.PlacementPopup, Active: false})

	opts = append([]Option{
		WithClock(clock.Now),
		WithRandom(rand.New(rand.NewPCG(1, 2)).Int64N),
	}, opts...)
	f.uc = NewAdUseCase(f.repo, f.cache, f.dedup, opts...)
	return f
}

func (f *fixture) campaign(c domain.Campaign) {
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	if c.StartDate.IsZero() {
		c.StartDate = epoch.Add(-24 * time.Hour)
	}
	if c.EndDate.IsZero() {
		c.EndDate = epoch.Add(30 * 24 * time.Hour)
	}
	f.repo.PutCampaign(c)
}

func (f *fixture) ad(t *testing.T, campaignID int64, weight int) *domain.Advertisement {
	t.Helper()
	ad := &domain.Advertisement{
		CampaignID:   campaignID,
		ZoneID:       1,
		Name:         "ad",
		Creative:     domain.ImageCreative{ImageURL: "https://cdn.example.com/a.png"},
		TargetURL:    "https://example.com",
		OpenInNewTab: true,
		Weight:       weight,
		Active:       true,
	}
	require.NoError(t, f.uc.CreateAdvertisement(context.Background(), ad))
	return ad
}

func price(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}
