package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"adzone/internal/core/domain"
)

type zoneReader interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)
}

// ZoneRegistry is a read-mostly snapshot of zone definitions. Reads never
// lock; writers replace the whole map.
type ZoneRegistry struct {
	repo     zoneReader
	snapshot atomic.Pointer[map[int64]domain.Zone]
}

// NewZoneRegistry returns an empty registry backed by repo.
func NewZoneRegistry(repo zoneReader) *ZoneRegistry {
	z := &ZoneRegistry{repo: repo}
	empty := map[int64]domain.Zone{}
	z.snapshot.Store(&empty)
	return z
}

// Refresh reloads every zone from the repository.
func (z *ZoneRegistry) Refresh(ctx context.Context) error {
	zones, err := z.repo.ListZones(ctx)
	if err != nil {
		return err
	}
	next := make(map[int64]domain.Zone, len(zones))
	for _, zone := range zones {
		next[zone.ID] = zone
	}
	z.snapshot.Store(&next)
	return nil
}

// Get returns the zone with id. A miss falls through to the repository and
// the result is added to the snapshot.
func (z *ZoneRegistry) Get(ctx context.Context, id int64) (domain.Zone, error) {
	if zone, ok := (*z.snapshot.Load())[id]; ok {
		return zone, nil
	}
	zone, err := z.repo.GetZone(ctx, id)
	if err != nil {
		return domain.Zone{}, err
	}
	for {
		cur := z.snapshot.Load()
		next := make(map[int64]domain.Zone, len(*cur)+1)
		for k, v := range *cur {
			next[k] = v
		}
		next[zone.ID] = *zone
		if z.snapshot.CompareAndSwap(cur, &next) {
			break
		}
	}
	return *zone, nil
}

// Run refreshes the registry every interval until ctx is done.
func (z *ZoneRegistry) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := z.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("zone refresh failed", slog.Any("error", err))
			}
		}
	}
}
