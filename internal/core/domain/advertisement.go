package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultWeight = 10
	MaxPriority   = 100
)

var (
	ErrInvalidWeight   = errors.New("weight must be at least 1")
	ErrInvalidPriority = errors.New("priority must be between 0 and 100")
	ErrMissingCreative = errors.New("creative payload is required")
	ErrMissingTarget   = errors.New("target url is required")
)

// Advertisement is one creative belonging to a campaign and servable in a
// single zone. Counters are owned by the storage layer and only ever move
// through atomic increments.
type Advertisement struct {
	ID           int64
	CampaignID   int64
	ZoneID       int64
	Name         string
	Creative     Creative
	TargetURL    string
	OpenInNewTab bool
	Weight       int
	Priority     int
	Active       bool

	Impressions int64
	Clicks      int64
	Conversions int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the constraints enforced at creation time. A zero weight
// is rejected here so the auction never has to handle it.
func (a *Advertisement) Validate() error {
	if a.Weight < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWeight, a.Weight)
	}
	if a.Priority < 0 || a.Priority > MaxPriority {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, a.Priority)
	}
	if a.Creative == nil {
		return ErrMissingCreative
	}
	if a.TargetURL == "" {
		return ErrMissingTarget
	}
	return nil
}

// CTR is the click-through rate in percent.
func (a *Advertisement) CTR() float64 {
	return rate(a.Clicks, a.Impressions)
}
