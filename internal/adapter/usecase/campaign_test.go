package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adzone/internal/adapter/memory"
	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/core/port/mocks"
)

func TestTransitionCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingFlat})
	ctx := context.Background()

	c, err := f.uc.TransitionCampaign(ctx, 1, domain.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, c.Status)

	c, err = f.uc.TransitionCampaign(ctx, 1, domain.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)

	_, err = f.uc.TransitionCampaign(ctx, 1, domain.StatusDraft)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.TransitionCampaign(ctx, 7, domain.StatusPaused)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestTransitionCampaignConflict(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	uc := NewAdUseCase(repo, memory.NewSelectionCache(nil), memory.NewDedupGuard(nil))

	repo.EXPECT().GetCampaign(mock.Anything, int64(3)).
		Return(&domain.Campaign{ID: 3, Status: domain.StatusActive}, nil)
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(3), domain.StatusActive, domain.StatusPaused).
		Return(port.ErrStatusConflict)

	_, err := uc.TransitionCampaign(context.Background(), 3, domain.StatusPaused)
	assert.ErrorIs(t, err, port.ErrStatusConflict)
}

func TestCreateAdvertisement(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingFlat})
	ctx := context.Background()

	ad := &domain.Advertisement{
		CampaignID:  1,
		ZoneID:      1,
		Creative:    domain.HTMLCreative{Content: "<p>hi</p>"},
		TargetURL:   "https://example.com",
		Weight:      domain.DefaultWeight,
		Impressions: 99,
	}
	require.NoError(t, f.uc.CreateAdvertisement(ctx, ad))
	assert.NotZero(t, ad.ID)
	assert.Zero(t, ad.Impressions)

	zero := *ad
	zero.Weight = 0
	assert.ErrorIs(t, f.uc.CreateAdvertisement(ctx, &zero), domain.ErrInvalidWeight)

	unknownZone := *ad
	unknownZone.ZoneID = 404
	assert.ErrorIs(t, f.uc.CreateAdvertisement(ctx, &unknownZone), port.ErrZoneNotFound)

	unknownCampaign := *ad
	unknownCampaign.CampaignID = 404
	assert.ErrorIs(t, f.uc.CreateAdvertisement(ctx, &unknownCampaign), port.ErrCampaignNotFound)
}

func TestGetStatsRates(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	uc := NewAdUseCase(repo, memory.NewSelectionCache(nil), memory.NewDedupGuard(nil))

	repo.EXPECT().GetStats(mock.Anything, mock.AnythingOfType("port.StatsReq")).
		Return(&port.StatsResp{Impressions: 1000, Clicks: 20, Conversions: 5}, nil)

	stats, err := uc.GetStats(context.Background(), port.StatsReq{})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, stats.CTR, 1e-9)
	assert.InDelta(t, 25.0, stats.ConversionRate, 1e-9)
}
