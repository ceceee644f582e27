package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// SelectionKey builds the selection cache key for a zone and page.
func SelectionKey(zoneID int64, pageURL string) string {
	return fmt.Sprintf("ad_zone_%d_%016x", zoneID, xxhash.Sum64String(pageURL))
}

// SelectAd returns a cached selection when one exists, otherwise runs the
// weighted auction over the zone's eligible candidates and caches the
// winner. It returns nil when the zone is unknown, inactive or has no
// eligible candidate.
func (u *AdUseCase) SelectAd(ctx context.Context, zoneID int64, pageURL string) (*port.PublicAd, error) {
	start := time.Now()
	key := SelectionKey(zoneID, pageURL)

	cached, ok, err := u.cache.Get(ctx, key)
	switch {
	case err != nil:
		u.metrics.IncBackendError("selection_cache")
		u.logger.Warn("selection cache read failed", slog.String("key", key), slog.Any("error", err))
	case ok:
		u.metrics.ObserveSelection(metrics.OutcomeCached, time.Since(start))
		return cached, nil
	}

	zone, err := u.zones.Get(ctx, zoneID)
	if errors.Is(err, port.ErrZoneNotFound) {
		u.metrics.ObserveSelection(metrics.OutcomeEmpty, time.Since(start))
		return nil, nil
	}
	if err != nil {
		u.metrics.ObserveSelection(metrics.OutcomeError, time.Since(start))
		return nil, err
	}
	if !zone.Active {
		u.metrics.ObserveSelection(metrics.OutcomeEmpty, time.Since(start))
		return nil, nil
	}

	candidates, err := u.CandidatesForZone(ctx, zoneID, u.now())
	if err != nil {
		u.metrics.ObserveSelection(metrics.OutcomeError, time.Since(start))
		return nil, err
	}
	if len(candidates) == 0 {
		u.metrics.ObserveSelection(metrics.OutcomeEmpty, time.Since(start))
		return nil, nil
	}

	r := u.draw(domain.TotalWeight(candidates)) + 1
	idx := domain.PickWeighted(candidates, r)
	if idx < 0 {
		return nil, fmt.Errorf("weighted draw %d outside candidate range", r)
	}
	chosen := Project(&candidates[idx], &zone)

	if err = u.cache.Set(ctx, key, chosen, u.selectionTTL); err != nil {
		u.metrics.IncBackendError("selection_cache")
		u.logger.Warn("selection cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	u.metrics.ObserveSelection(metrics.OutcomeServed, time.Since(start))
	return chosen, nil
}

// CandidatesForZone returns the zone's active advertisements whose campaign
// is active at now, ordered by id.
func (u *AdUseCase) CandidatesForZone(ctx context.Context, zoneID int64, now time.Time) ([]domain.Advertisement, error) {
	rows, err := u.repo.ListZoneCandidates(ctx, zoneID, now)
	if err != nil {
		return nil, fmt.Errorf("list candidates for zone %d: %w", zoneID, err)
	}
	ads := make([]domain.Advertisement, 0, len(rows))
	for i := range rows {
		if rows[i].Ad.ZoneID != zoneID || !rows[i].Ad.Active || rows[i].Ad.Weight < 1 {
			continue
		}
		if !rows[i].Campaign.IsActive(now) {
			continue
		}
		ads = append(ads, rows[i].Ad)
	}
	domain.SortByID(ads)
	return ads, nil
}

// Project builds the public view of ad placed in zone.
func Project(ad *domain.Advertisement, zone *domain.Zone) *port.PublicAd {
	pub := &port.PublicAd{
		ID:           ad.ID,
		Name:         ad.Name,
		TargetURL:    ad.TargetURL,
		OpenInNewTab: ad.OpenInNewTab,
		ZoneName:     zone.Name,
		ZoneWidth:    zone.Width,
		ZoneHeight:   zone.Height,
	}
	if ad.Creative == nil {
		return pub
	}
	pub.AdType = ad.Creative.Kind()
	switch c := ad.Creative.(type) {
	case domain.ImageCreative:
		pub.Image = c.ImageURL
	case domain.HTMLCreative:
		pub.HTMLContent = c.Content
	case domain.VideoCreative:
		pub.VideoURL = c.VideoURL
	case domain.ScriptCreative:
		pub.ScriptCode = c.Code
	case domain.NativeCreative:
		pub.Title = c.Title
		pub.Description = c.Description
		pub.Thumbnail = c.ThumbnailURL
	}
	return pub
}
