package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adzone/internal/adapter/memory"
	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/core/port/mocks"
	"adzone/internal/metrics"
)

func impression(adID int64, ip string) port.ImpressionInput {
	return port.ImpressionInput{AdID: adID, Client: domain.Client{IP: ip, UserAgent: "test"}}
}

func TestTrackImpressionBudgetExhaustion(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{
		ID:           1,
		PricingModel: domain.PricingCPM,
		CPMPrice:     price(10),
		Budget:       decimal.NewNullDecimal(decimal.NewFromInt(100)),
	})
	ad := f.ad(t, 1, 10)
	ctx := context.Background()

	for i := range 10_000 {
		ip := fmt.Sprintf("10.%d.%d.%d", i>>16&0xff, i>>8&0xff, i&0xff)
		res, err := f.uc.TrackImpression(ctx, impression(ad.ID, ip))
		require.NoError(t, err)
		require.Equal(t, port.Recorded, res.Status)
	}

	c, err := f.repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), c.TotalImpressions)
	assert.True(t, decimal.NewFromInt(100).Equal(c.Spent), "spent = %s", c.Spent)
	assert.False(t, c.IsActive(epoch))

	got, err := f.uc.SelectAd(ctx, 1, "/fresh-page")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTrackImpressionDedupWindow(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingCPM, CPMPrice: price(10)})
	ad := f.ad(t, 1, 10)
	ctx := context.Background()

	res, err := f.uc.TrackImpression(ctx, impression(ad.ID, "203.0.113.7"))
	require.NoError(t, err)
	assert.Equal(t, port.Recorded, res.Status)
	assert.NotZero(t, res.EventID)

	res, err = f.uc.TrackImpression(ctx, impression(ad.ID, "203.0.113.7"))
	require.NoError(t, err)
	assert.Equal(t, port.Deduplicated, res.Status)
	assert.Zero(t, res.EventID)

	f.clock.Advance(61 * time.Second)
	res, err = f.uc.TrackImpression(ctx, impression(ad.ID, "203.0.113.7"))
	require.NoError(t, err)
	assert.Equal(t, port.Recorded, res.Status)

	cand, err := f.repo.GetCandidate(ctx, ad.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cand.Ad.Impressions)
	assert.Equal(t, int64(2), cand.Campaign.TotalImpressions)
	assert.True(t, decimal.RequireFromString("0.02").Equal(cand.Campaign.Spent))
}

func TestTrackClickSeparateWindow(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingCPC, CPCPrice: price(2)})
	ad := f.ad(t, 1, 10)
	ctx := context.Background()

	_, err := f.uc.TrackImpression(ctx, impression(ad.ID, "198.51.100.1"))
	require.NoError(t, err)

	impID := int64(1)
	res, err := f.uc.TrackClick(ctx, port.ClickInput{AdID: ad.ID, ImpressionID: &impID, Client: domain.Client{IP: "198.51.100.1"}})
	require.NoError(t, err)
	assert.Equal(t, port.Recorded, res.Status)

	res, err = f.uc.TrackClick(ctx, port.ClickInput{AdID: ad.ID, Client: domain.Client{IP: "198.51.100.1"}})
	require.NoError(t, err)
	assert.Equal(t, port.Deduplicated, res.Status)

	c, err := f.repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.TotalClicks)
	assert.True(t, decimal.NewFromInt(2).Equal(c.Spent), "cpc charges clicks only, spent = %s", c.Spent)
}

func TestTrackUnknownAd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.TrackImpression(ctx, impression(42, "1.1.1.1"))
	assert.ErrorIs(t, err, port.ErrAdNotFound)
	_, err = f.uc.TrackClick(ctx, port.ClickInput{AdID: 42})
	assert.ErrorIs(t, err, port.ErrAdNotFound)
	_, err = f.uc.TrackConversion(ctx, port.ConversionInput{AdID: 42, Type: domain.ConversionLead})
	assert.ErrorIs(t, err, port.ErrAdNotFound)
}

func TestTrackConversionCPAKeepsSpent(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{
		ID:           1,
		PricingModel: domain.PricingCPA,
		CPAPrice:     decimal.NewNullDecimal(decimal.NewFromInt(50)),
	})
	ad := f.ad(t, 1, 10)
	ctx := context.Background()

	for i := range 3 {
		res, err := f.uc.TrackConversion(ctx, port.ConversionInput{
			AdID:   ad.ID,
			Type:   domain.ConversionPurchase,
			Value:  decimal.NewFromInt(500),
			Client: domain.Client{IP: "192.0.2.1"},
			Notes:  fmt.Sprintf("order %d", i),
		})
		require.NoError(t, err)
		assert.Equal(t, port.Recorded, res.Status, "conversions are never deduplicated")
	}

	c, err := f.repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.TotalConversions)
	assert.True(t, c.Spent.IsZero())
}

func TestTrackConversionRejectsUnknownType(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	uc := NewAdUseCase(repo, memory.NewSelectionCache(nil), memory.NewDedupGuard(nil))

	_, err := uc.TrackConversion(context.Background(), port.ConversionInput{AdID: 1, Type: "refund"})
	assert.ErrorIs(t, err, domain.ErrUnknownConversionType)
}

func TestTrackImpressionStorageFailureReleasesKey(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	dedup := memory.NewDedupGuard(nil)
	reg := prometheus.NewRegistry()
	m := metrics.NewEngine(reg)
	uc := NewAdUseCase(repo, memory.NewSelectionCache(nil), dedup, WithMetrics(m))

	cand := &port.Candidate{
		Ad:       domain.Advertisement{ID: 5, CampaignID: 1, Weight: 10, Active: true},
		Campaign: domain.Campaign{ID: 1, PricingModel: domain.PricingCPM, CPMPrice: price(10)},
	}
	storeErr := errors.New("connection reset")
	repo.EXPECT().GetCandidate(mock.Anything, int64(5)).Return(cand, nil)
	repo.EXPECT().
		RecordImpression(mock.Anything, mock.AnythingOfType("*domain.Impression")).
		Run(func(_ context.Context, imp *domain.Impression) {
			assert.True(t, decimal.RequireFromString("0.01").Equal(imp.Cost))
			assert.NotEmpty(t, imp.Token)
		}).
		Return(nil, storeErr).
		Once()

	_, err := uc.TrackImpression(context.Background(), impression(5, "192.0.2.9"))
	require.ErrorIs(t, err, storeErr)

	ok, err := dedup.Acquire(context.Background(), dedupKey(domain.EventImpression, 5, "192.0.2.9"), domain.DedupWindow)
	require.NoError(t, err)
	assert.True(t, ok, "failed write must not hold the dedup key")
	assert.Equal(t, 1.0, counter(t, reg, "ad_events_total", "result", metrics.ResultFailed))
}

type failingGuard struct{}

func (failingGuard) Acquire(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis down")
}
func (failingGuard) Release(context.Context, string) error { return nil }

func TestTrackImpressionDedupFailsOpen(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingFlat})
	ad := f.ad(t, 1, 10)
	uc := NewAdUseCase(f.repo, f.cache, failingGuard{}, WithClock(f.clock.Now))
	ctx := context.Background()

	for range 2 {
		res, err := uc.TrackImpression(ctx, impression(ad.ID, "192.0.2.1"))
		require.NoError(t, err)
		assert.Equal(t, port.Recorded, res.Status)
	}
}

func TestTrackImpressionReportsOvershoot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewEngine(reg)
	f := newFixture(t, WithMetrics(m))
	f.campaign(domain.Campaign{
		ID:           1,
		PricingModel: domain.PricingCPM,
		CPMPrice:     price(10),
		Budget:       decimal.NewNullDecimal(decimal.RequireFromString("0.01")),
	})
	ad := f.ad(t, 1, 10)
	ctx := context.Background()

	_, err := f.uc.TrackImpression(ctx, impression(ad.ID, "192.0.2.1"))
	require.NoError(t, err)
	assert.Zero(t, counter(t, reg, "campaign_overshoot_total", "limit", "budget"))

	_, err = f.uc.TrackImpression(ctx, impression(ad.ID, "192.0.2.2"))
	require.NoError(t, err, "accruals past the budget are accepted")
	assert.Equal(t, 1.0, counter(t, reg, "campaign_overshoot_total", "limit", "budget"))
}

func TestTrackAdblock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.uc.TrackAdblock(ctx, domain.Client{IP: "192.0.2.1", PageURL: "/"}))

	stats, err := f.uc.GetStats(ctx, port.StatsReq{From: epoch.Add(-time.Hour), To: epoch.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.AdblockDetections)
}

// counter returns the value of the series of name whose label key equals
// value, or zero when no such series was exported.
func counter(t *testing.T, reg *prometheus.Registry, name, key, value string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if hasLabel(metric.GetLabel(), key, value) {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func hasLabel(pairs []*dto.LabelPair, key, value string) bool {
	for _, p := range pairs {
		if p.GetName() == key && p.GetValue() == value {
			return true
		}
	}
	return false
}

func TestTrackClickRejectsUnknownImpression(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingCPC, CPCPrice: price(2)})
	ad := f.ad(t, 1, 10)
	other := f.ad(t, 1, 10)
	ctx := context.Background()

	missing := int64(999999)
	_, err := f.uc.TrackClick(ctx, port.ClickInput{AdID: ad.ID, ImpressionID: &missing, Client: domain.Client{IP: "192.0.2.1"}})
	require.ErrorIs(t, err, port.ErrInvalidReference)

	res, err := f.uc.TrackImpression(ctx, impression(other.ID, "192.0.2.1"))
	require.NoError(t, err)
	foreign := res.EventID
	_, err = f.uc.TrackClick(ctx, port.ClickInput{AdID: ad.ID, ImpressionID: &foreign, Client: domain.Client{IP: "192.0.2.1"}})
	require.ErrorIs(t, err, port.ErrInvalidReference, "impression of another ad")

	c, err := f.repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, c.TotalClicks)
	assert.True(t, c.Spent.IsZero())

	res, err = f.uc.TrackClick(ctx, port.ClickInput{AdID: ad.ID, Client: domain.Client{IP: "192.0.2.1"}})
	require.NoError(t, err)
	assert.Equal(t, port.Recorded, res.Status, "a rejected click must not hold the dedup key")
}

func TestTrackConversionRejectsUnknownClick(t *testing.T) {
	f := newFixture(t)
	f.campaign(domain.Campaign{ID: 1, PricingModel: domain.PricingCPA, CPAPrice: price(5)})
	ad := f.ad(t, 1, 10)
	ctx := context.Background()

	missing := int64(424242)
	_, err := f.uc.TrackConversion(ctx, port.ConversionInput{AdID: ad.ID, ClickID: &missing, Type: domain.ConversionLead})
	require.ErrorIs(t, err, port.ErrInvalidReference)

	click, err := f.uc.TrackClick(ctx, port.ClickInput{AdID: ad.ID, Client: domain.Client{IP: "192.0.2.1"}})
	require.NoError(t, err)
	res, err := f.uc.TrackConversion(ctx, port.ConversionInput{AdID: ad.ID, ClickID: &click.EventID, Type: domain.ConversionLead})
	require.NoError(t, err)
	assert.Equal(t, port.Recorded, res.Status)

	c, err := f.repo.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.TotalConversions)
}

func TestTrackClickReferenceLookupFailure(t *testing.T) {
	repo := mocks.NewMockAdRepository(t)
	uc := NewAdUseCase(repo, memory.NewSelectionCache(nil), memory.NewDedupGuard(nil))
	lookupErr := errors.New("connection reset")

	repo.EXPECT().GetCandidate(mock.Anything, int64(5)).
		Return(&port.Candidate{Ad: domain.Advertisement{ID: 5, CampaignID: 1}}, nil)
	repo.EXPECT().EventBelongsToAd(mock.Anything, domain.EventImpression, int64(7), int64(5)).
		Return(false, lookupErr)

	impID := int64(7)
	_, err := uc.TrackClick(context.Background(), port.ClickInput{AdID: 5, ImpressionID: &impID})
	require.ErrorIs(t, err, lookupErr)
	assert.NotErrorIs(t, err, port.ErrInvalidReference)
}
