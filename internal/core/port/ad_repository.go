package port

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"adzone/internal/core/domain"
)

var (
	ErrAdNotFound       = errors.New("advertisement not found")
	ErrZoneNotFound     = errors.New("zone not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrStatusConflict is returned when a status compare-and-set loses to a
	// concurrent writer.
	ErrStatusConflict = errors.New("campaign status changed concurrently")
	// ErrInvalidReference is returned when a click or conversion names an
	// impression or click that does not exist for the advertisement.
	ErrInvalidReference = errors.New("referenced event does not exist for this advertisement")
)

// AdRepository defines the persistence layer for the ad engine. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe: every counter and spend mutation is an atomic increment
// in the backing store, never a read-modify-write in application code.
type AdRepository interface {
	// ListZones returns every zone, active or not.
	ListZones(ctx context.Context) ([]domain.Zone, error)
	// GetZone returns a zone by id or ErrZoneNotFound.
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)

	// ListZoneCandidates returns the active advertisements bound to zoneID
	// together with a point-in-time snapshot of their campaigns. Callers
	// apply Campaign.IsActive themselves.
	ListZoneCandidates(ctx context.Context, zoneID int64, now time.Time) ([]Candidate, error)
	// GetCandidate returns an advertisement and its campaign or ErrAdNotFound.
	GetCandidate(ctx context.Context, adID int64) (*Candidate, error)

	// CreateAdvertisement inserts ad and assigns its id.
	CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	// GetCampaign returns a campaign by id or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// UpdateCampaignStatus sets the status to next only if it is still from.
	UpdateCampaignStatus(ctx context.Context, id int64, from, next domain.CampaignStatus) error

	// RecordImpression stores the impression, increments the advertisement
	// and campaign impression counters and adds imp.Cost to spent in one
	// atomic unit. It returns the campaign as it stands after the write.
	RecordImpression(ctx context.Context, imp *domain.Impression) (*domain.Campaign, error)
	// RecordClick is the click counterpart of RecordImpression.
	RecordClick(ctx context.Context, click *domain.Click) (*domain.Campaign, error)
	// RecordConversion stores the conversion and increments conversion
	// counters. Spend is never touched.
	RecordConversion(ctx context.Context, conv *domain.Conversion) error
	// EventBelongsToAd reports whether the recorded event of kind with
	// eventID exists and was recorded for adID. Only impressions and clicks
	// can be referenced.
	EventBelongsToAd(ctx context.Context, kind domain.EventKind, eventID, adID int64) (bool, error)

	// RecordAdblock stores an adblock detection.
	RecordAdblock(ctx context.Context, det *domain.AdblockDetection) error

	// GetStats returns aggregated events for campaigns.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// Candidate pairs an advertisement with its campaign.
type Candidate struct {
	Ad       domain.Advertisement
	Campaign domain.Campaign
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}

// StatsResp contains aggregated event counts and revenue. Revenue sums the
// cost accrued by impressions and clicks in the period.
type StatsResp struct {
	Impressions       int64           `json:"total_impressions"`
	Clicks            int64           `json:"total_clicks"`
	Conversions       int64           `json:"total_conversions"`
	AdblockDetections int64           `json:"adblock_detections"`
	Revenue           decimal.Decimal `json:"total_revenue"`
	CTR               float64         `json:"average_ctr"`
	ConversionRate    float64         `json:"average_conversion_rate"`
}
