package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// TrackImpression records an impression of in.AdID. A second impression
// from the same IP within domain.DedupWindow is reported as Deduplicated and
// changes nothing.
func (u *AdUseCase) TrackImpression(ctx context.Context, in port.ImpressionInput) (*port.TrackResult, error) {
	cand, err := u.repo.GetCandidate(ctx, in.AdID)
	if err != nil {
		return nil, err
	}
	key := dedupKey(domain.EventImpression, in.AdID, in.Client.IP)
	if !u.acquire(ctx, key) {
		u.metrics.IncEvent(string(domain.EventImpression), metrics.ResultDeduplicated)
		return &port.TrackResult{Status: port.Deduplicated}, nil
	}

	imp := &domain.Impression{
		Token:           u.newToken(),
		AdvertisementID: cand.Ad.ID,
		CampaignID:      cand.Ad.CampaignID,
		Client:          in.Client,
		Content:         in.Content,
		Cost:            cand.Campaign.Accrual(domain.EventImpression),
		CreatedAt:       u.now().UTC(),
	}
	camp, err := u.repo.RecordImpression(ctx, imp)
	if err != nil {
		u.release(ctx, key)
		u.metrics.IncEvent(string(domain.EventImpression), metrics.ResultFailed)
		return nil, fmt.Errorf("record impression for ad %d: %w", in.AdID, err)
	}
	u.metrics.IncEvent(string(domain.EventImpression), metrics.ResultRecorded)
	u.reportOvershoot(camp)
	return &port.TrackResult{Status: port.Recorded, EventID: imp.ID}, nil
}

// TrackClick records a click of in.AdID under a dedup window separate from
// impressions.
func (u *AdUseCase) TrackClick(ctx context.Context, in port.ClickInput) (*port.TrackResult, error) {
	cand, err := u.repo.GetCandidate(ctx, in.AdID)
	if err != nil {
		return nil, err
	}
	if in.ImpressionID != nil {
		if err = u.checkReference(ctx, domain.EventImpression, *in.ImpressionID, in.AdID); err != nil {
			return nil, err
		}
	}
	key := dedupKey(domain.EventClick, in.AdID, in.Client.IP)
	if !u.acquire(ctx, key) {
		u.metrics.IncEvent(string(domain.EventClick), metrics.ResultDeduplicated)
		return &port.TrackResult{Status: port.Deduplicated}, nil
	}

	click := &domain.Click{
		Token:           u.newToken(),
		AdvertisementID: cand.Ad.ID,
		CampaignID:      cand.Ad.CampaignID,
		ImpressionID:    in.ImpressionID,
		Client:          in.Client,
		Content:         in.Content,
		Cost:            cand.Campaign.Accrual(domain.EventClick),
		CreatedAt:       u.now().UTC(),
	}
	camp, err := u.repo.RecordClick(ctx, click)
	if err != nil {
		u.release(ctx, key)
		u.metrics.IncEvent(string(domain.EventClick), metrics.ResultFailed)
		return nil, fmt.Errorf("record click for ad %d: %w", in.AdID, err)
	}
	u.metrics.IncEvent(string(domain.EventClick), metrics.ResultRecorded)
	u.reportOvershoot(camp)
	return &port.TrackResult{Status: port.Recorded, EventID: click.ID}, nil
}

// TrackConversion records a conversion. The conversion value is stored but
// never added to campaign spend, whatever the pricing model.
func (u *AdUseCase) TrackConversion(ctx context.Context, in port.ConversionInput) (*port.TrackResult, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownConversionType, in.Type)
	}
	cand, err := u.repo.GetCandidate(ctx, in.AdID)
	if err != nil {
		return nil, err
	}
	if in.ClickID != nil {
		if err = u.checkReference(ctx, domain.EventClick, *in.ClickID, in.AdID); err != nil {
			return nil, err
		}
	}
	conv := &domain.Conversion{
		Token:           u.newToken(),
		AdvertisementID: cand.Ad.ID,
		CampaignID:      cand.Ad.CampaignID,
		ClickID:         in.ClickID,
		Type:            in.Type,
		Value:           in.Value,
		Client:          in.Client,
		Notes:           in.Notes,
		CreatedAt:       u.now().UTC(),
	}
	if err = u.repo.RecordConversion(ctx, conv); err != nil {
		u.metrics.IncEvent(string(domain.EventConversion), metrics.ResultFailed)
		return nil, fmt.Errorf("record conversion for ad %d: %w", in.AdID, err)
	}
	u.metrics.IncEvent(string(domain.EventConversion), metrics.ResultRecorded)
	return &port.TrackResult{Status: port.Recorded, EventID: conv.ID}, nil
}

// TrackAdblock records that the client blocked the ad slot.
func (u *AdUseCase) TrackAdblock(ctx context.Context, client domain.Client) error {
	det := &domain.AdblockDetection{Client: client, CreatedAt: u.now().UTC()}
	if err := u.repo.RecordAdblock(ctx, det); err != nil {
		u.metrics.IncEvent("adblock", metrics.ResultFailed)
		return fmt.Errorf("record adblock detection: %w", err)
	}
	u.metrics.IncEvent("adblock", metrics.ResultRecorded)
	return nil
}

// checkReference fails with port.ErrInvalidReference unless the event of
// kind with id was recorded for adID.
func (u *AdUseCase) checkReference(ctx context.Context, kind domain.EventKind, id, adID int64) error {
	ok, err := u.repo.EventBelongsToAd(ctx, kind, id, adID)
	if err != nil {
		return fmt.Errorf("look up %s %d: %w", kind, id, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s %d for ad %d", port.ErrInvalidReference, kind, id, adID)
	}
	return nil
}

// acquire registers key with the dedup guard. Guard failures let the event
// through.
func (u *AdUseCase) acquire(ctx context.Context, key string) bool {
	ok, err := u.dedup.Acquire(ctx, key, domain.DedupWindow)
	if err != nil {
		u.metrics.IncBackendError("dedup")
		u.logger.Warn("dedup guard unavailable", slog.String("key", key), slog.Any("error", err))
		return true
	}
	return ok
}

func (u *AdUseCase) release(ctx context.Context, key string) {
	if err := u.dedup.Release(ctx, key); err != nil {
		u.metrics.IncBackendError("dedup")
		u.logger.Warn("dedup release failed", slog.String("key", key), slog.Any("error", err))
	}
}

// reportOvershoot logs accruals that left the campaign past a limit. The
// window between selection and accrual makes a small overshoot expected.
func (u *AdUseCase) reportOvershoot(c *domain.Campaign) {
	if c == nil {
		return
	}
	for _, limit := range c.Overshoot() {
		u.metrics.IncOvershoot(limit)
		u.logger.Warn("campaign past limit",
			slog.Int64("campaign_id", c.ID),
			slog.String("limit", limit),
			slog.String("spent", c.Spent.String()),
			slog.Int64("impressions", c.TotalImpressions),
			slog.Int64("clicks", c.TotalClicks),
		)
	}
}

func dedupKey(kind domain.EventKind, adID int64, ip string) string {
	return fmt.Sprintf("%s:%d:%s", kind, adID, ip)
}
