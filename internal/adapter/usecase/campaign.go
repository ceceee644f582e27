package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

// CreateAdvertisement validates ad, checks that its zone and campaign exist
// and stores it. Counters always start at zero.
func (u *AdUseCase) CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	if err := ad.Validate(); err != nil {
		return err
	}
	if _, err := u.zones.Get(ctx, ad.ZoneID); err != nil {
		return err
	}
	if _, err := u.repo.GetCampaign(ctx, ad.CampaignID); err != nil {
		return err
	}
	ad.Impressions, ad.Clicks, ad.Conversions = 0, 0, 0
	if err := u.repo.CreateAdvertisement(ctx, ad); err != nil {
		return fmt.Errorf("create advertisement: %w", err)
	}
	u.logger.Info("advertisement created",
		slog.Int64("id", ad.ID),
		slog.Int64("campaign_id", ad.CampaignID),
		slog.Int64("zone_id", ad.ZoneID),
		slog.Int("weight", ad.Weight),
	)
	return nil
}

// TransitionCampaign moves campaign id to next if the lifecycle allows it.
// The write succeeds only if no one changed the status in between.
func (u *AdUseCase) TransitionCampaign(ctx context.Context, id int64, next domain.CampaignStatus) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	from := c.Status
	if err = c.Transition(next); err != nil {
		return nil, err
	}
	if err = u.repo.UpdateCampaignStatus(ctx, id, from, next); err != nil {
		return nil, err
	}
	u.logger.Info("campaign status changed",
		slog.Int64("campaign_id", id),
		slog.String("from", string(from)),
		slog.String("to", string(next)),
	)
	return c, nil
}

// GetStats returns aggregated stats for campaigns in a period.
func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	stats, err := u.repo.GetStats(ctx, req)
	if err != nil {
		return nil, err
	}
	if stats.Impressions > 0 {
		stats.CTR = float64(stats.Clicks) / float64(stats.Impressions) * 100
	}
	if stats.Clicks > 0 {
		stats.ConversionRate = float64(stats.Conversions) / float64(stats.Clicks) * 100
	}
	return stats, nil
}
