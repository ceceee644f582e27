package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidTransition = errors.New("invalid campaign status transition")

// CampaignStatus is the stored lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusScheduled CampaignStatus = "scheduled"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusCancelled CampaignStatus = "cancelled"
)

// PricingModel decides which event, if any, accrues spend.
type PricingModel string

const (
	PricingCPM  PricingModel = "cpm"
	PricingCPC  PricingModel = "cpc"
	PricingCPA  PricingModel = "cpa"
	PricingFlat PricingModel = "flat"
)

// EventKind is the type of telemetry that reaches the ledger.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
	EventConversion EventKind = "conversion"
)

var transitions = map[CampaignStatus][]CampaignStatus{
	StatusDraft:     {StatusScheduled, StatusCancelled},
	StatusScheduled: {StatusActive, StatusCancelled},
	StatusActive:    {StatusPaused, StatusCompleted, StatusCancelled},
	StatusPaused:    {StatusActive, StatusCancelled},
	StatusCompleted: {StatusCancelled},
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the lifecycle allows moving from s to next.
func (s CampaignStatus) CanTransition(next CampaignStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Campaign represents a budgeted, scheduled unit of advertising. Money is
// held as decimal; a NULL or zero Budget, MaxImpressions or MaxClicks means
// the corresponding limit is not enforced.
type Campaign struct {
	ID           int64
	AdvertiserID int64
	Name         string
	Status       CampaignStatus
	PricingModel PricingModel

	Budget      decimal.NullDecimal
	Spent       decimal.Decimal
	DailyBudget decimal.NullDecimal // stored, not enforced
	CPMPrice    decimal.NullDecimal
	CPCPrice    decimal.NullDecimal
	CPAPrice    decimal.NullDecimal

	MaxImpressions *int64
	MaxClicks      *int64

	StartDate time.Time
	EndDate   time.Time

	TotalImpressions int64
	TotalClicks      int64
	TotalConversions int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the campaign may be served at now. A campaign
// whose stored status is active but whose window, budget or caps are
// exhausted is not active.
func (c *Campaign) IsActive(now time.Time) bool {
	return c.Status == StatusActive &&
		!now.Before(c.StartDate) && !now.After(c.EndDate) &&
		!c.BudgetExhausted() &&
		!capReached(c.MaxImpressions, c.TotalImpressions) &&
		!capReached(c.MaxClicks, c.TotalClicks)
}

// BudgetExhausted reports whether spent has reached a set budget.
func (c *Campaign) BudgetExhausted() bool {
	if !c.Budget.Valid || c.Budget.Decimal.IsZero() {
		return false
	}
	return c.Spent.GreaterThanOrEqual(c.Budget.Decimal)
}

// Overshoot returns the limits the campaign has crossed past their bound.
// It is informational only: spending past the budget is accepted.
func (c *Campaign) Overshoot() []string {
	var out []string
	if c.Budget.Valid && !c.Budget.Decimal.IsZero() && c.Spent.GreaterThan(c.Budget.Decimal) {
		out = append(out, "budget")
	}
	if c.MaxImpressions != nil && *c.MaxImpressions > 0 && c.TotalImpressions > *c.MaxImpressions {
		out = append(out, "impressions")
	}
	if c.MaxClicks != nil && *c.MaxClicks > 0 && c.TotalClicks > *c.MaxClicks {
		out = append(out, "clicks")
	}
	return out
}

// Accrual returns the spend an event of the given kind adds to the campaign.
// CPM charges cpm_price/1000 per impression and CPC charges cpc_price per
// click. CPA and flat campaigns are settled outside the telemetry path.
func (c *Campaign) Accrual(kind EventKind) decimal.Decimal {
	switch {
	case kind == EventImpression && c.PricingModel == PricingCPM && c.CPMPrice.Valid:
		return c.CPMPrice.Decimal.Div(decimal.NewFromInt(1000))
	case kind == EventClick && c.PricingModel == PricingCPC && c.CPCPrice.Valid:
		return c.CPCPrice.Decimal
	}
	return decimal.Zero
}

// Apply folds one recorded event into the denormalized counters and spend.
func (c *Campaign) Apply(kind EventKind, cost decimal.Decimal) {
	switch kind {
	case EventImpression:
		c.TotalImpressions++
	case EventClick:
		c.TotalClicks++
	case EventConversion:
		c.TotalConversions++
	}
	c.Spent = c.Spent.Add(cost)
}

// Transition validates and applies a status change.
func (c *Campaign) Transition(next CampaignStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !c.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, next)
	}
	c.Status = next
	return nil
}

// CTR is the click-through rate in percent.
func (c *Campaign) CTR() float64 {
	return rate(c.TotalClicks, c.TotalImpressions)
}

// ConversionRate is conversions per click in percent.
func (c *Campaign) ConversionRate() float64 {
	return rate(c.TotalConversions, c.TotalClicks)
}

func capReached(limit *int64, total int64) bool {
	return limit != nil && *limit > 0 && total >= *limit
}

func rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
