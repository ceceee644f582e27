package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limit(n int64) *int64 { return &n }

func activeCampaign(now time.Time) Campaign {
	return Campaign{
		ID:           1,
		Status:       StatusActive,
		PricingModel: PricingCPM,
		CPMPrice:     decimal.NewNullDecimal(decimal.NewFromInt(10)),
		StartDate:    now.Add(-time.Hour),
		EndDate:      now.Add(time.Hour),
	}
}

func TestCampaignIsActive(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(c *Campaign)
		want   bool
	}{
		{"active in window", func(*Campaign) {}, true},
		{"paused", func(c *Campaign) { c.Status = StatusPaused }, false},
		{"draft", func(c *Campaign) { c.Status = StatusDraft }, false},
		{"not started", func(c *Campaign) { c.StartDate = now.Add(time.Minute) }, false},
		{"ended", func(c *Campaign) { c.EndDate = now.Add(-time.Minute) }, false},
		{"starts exactly now", func(c *Campaign) { c.StartDate = now }, true},
		{"ends exactly now", func(c *Campaign) { c.EndDate = now }, true},
		{"budget exhausted", func(c *Campaign) {
			c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(100))
			c.Spent = decimal.NewFromInt(100)
		}, false},
		{"budget left", func(c *Campaign) {
			c.Budget = decimal.NewNullDecimal(decimal.NewFromInt(100))
			c.Spent = decimal.RequireFromString("99.99")
		}, true},
		{"zero budget is unlimited", func(c *Campaign) {
			c.Budget = decimal.NewNullDecimal(decimal.Zero)
			c.Spent = decimal.NewFromInt(5000)
		}, true},
		{"impression cap reached", func(c *Campaign) {
			c.MaxImpressions = limit(10)
			c.TotalImpressions = 10
		}, false},
		{"click cap reached", func(c *Campaign) {
			c.MaxClicks = limit(3)
			c.TotalClicks = 4
		}, false},
		{"zero caps are unlimited", func(c *Campaign) {
			c.MaxImpressions = limit(0)
			c.MaxClicks = limit(0)
			c.TotalImpressions = 1_000_000
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := activeCampaign(now)
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.IsActive(now))
		})
	}
}

func TestCampaignAccrual(t *testing.T) {
	c := Campaign{
		PricingModel: PricingCPM,
		CPMPrice:     decimal.NewNullDecimal(decimal.NewFromInt(10)),
		CPCPrice:     decimal.NewNullDecimal(decimal.NewFromInt(2)),
		CPAPrice:     decimal.NewNullDecimal(decimal.NewFromInt(50)),
	}
	assert.True(t, decimal.RequireFromString("0.01").Equal(c.Accrual(EventImpression)))
	assert.True(t, c.Accrual(EventClick).IsZero())

	c.PricingModel = PricingCPC
	assert.True(t, c.Accrual(EventImpression).IsZero())
	assert.True(t, decimal.NewFromInt(2).Equal(c.Accrual(EventClick)))

	c.PricingModel = PricingCPA
	for _, kind := range []EventKind{EventImpression, EventClick, EventConversion} {
		assert.True(t, c.Accrual(kind).IsZero(), "cpa must not accrue on %s", kind)
	}

	c.PricingModel = PricingFlat
	assert.True(t, c.Accrual(EventImpression).IsZero())
}

func TestCampaignApplyExactSpend(t *testing.T) {
	c := Campaign{PricingModel: PricingCPM, CPMPrice: decimal.NewNullDecimal(decimal.NewFromInt(10))}
	for range 10_000 {
		c.Apply(EventImpression, c.Accrual(EventImpression))
	}
	assert.Equal(t, int64(10_000), c.TotalImpressions)
	assert.True(t, decimal.NewFromInt(100).Equal(c.Spent), "spent = %s", c.Spent)
}

func TestCampaignOvershoot(t *testing.T) {
	c := Campaign{
		Budget:           decimal.NewNullDecimal(decimal.NewFromInt(10)),
		Spent:            decimal.RequireFromString("10.01"),
		MaxImpressions:   limit(5),
		TotalImpressions: 5,
		MaxClicks:        limit(1),
		TotalClicks:      2,
	}
	assert.Equal(t, []string{"budget", "clicks"}, c.Overshoot())

	c.Spent = decimal.NewFromInt(10)
	c.TotalClicks = 1
	assert.Empty(t, c.Overshoot())
}

func TestCampaignTransition(t *testing.T) {
	allowed := []struct{ from, to CampaignStatus }{
		{StatusDraft, StatusScheduled},
		{StatusScheduled, StatusActive},
		{StatusActive, StatusPaused},
		{StatusPaused, StatusActive},
		{StatusActive, StatusCompleted},
		{StatusCompleted, StatusCancelled},
	}
	for _, tt := range allowed {
		c := Campaign{Status: tt.from}
		require.NoError(t, c.Transition(tt.to), "%s -> %s", tt.from, tt.to)
		assert.Equal(t, tt.to, c.Status)
	}

	rejected := []struct{ from, to CampaignStatus }{
		{StatusDraft, StatusActive},
		{StatusCancelled, StatusActive},
		{StatusCompleted, StatusActive},
		{StatusPaused, StatusCompleted},
		{StatusActive, "archived"},
	}
	for _, tt := range rejected {
		c := Campaign{Status: tt.from}
		err := c.Transition(tt.to)
		require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tt.from, tt.to)
		assert.Equal(t, tt.from, c.Status)
	}
}

func TestCampaignRates(t *testing.T) {
	c := Campaign{TotalImpressions: 200, TotalClicks: 10, TotalConversions: 1}
	assert.InDelta(t, 5.0, c.CTR(), 1e-9)
	assert.InDelta(t, 10.0, c.ConversionRate(), 1e-9)
	assert.Zero(t, (&Campaign{}).CTR())
}
