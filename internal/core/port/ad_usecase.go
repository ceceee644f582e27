package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adzone/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain.
type AdUseCase interface {
	// SelectAd picks one advertisement for the zone by weighted random
	// choice among eligible candidates. Results are cached per (zone, page)
	// for the selection TTL. It returns nil when nothing is eligible.
	SelectAd(ctx context.Context, zoneID int64, pageURL string) (*PublicAd, error)

	// TrackImpression records an impression unless the same IP already
	// produced one for the advertisement within the dedup window.
	TrackImpression(ctx context.Context, in ImpressionInput) (*TrackResult, error)
	// TrackClick records a click under its own dedup window.
	TrackClick(ctx context.Context, in ClickInput) (*TrackResult, error)
	// TrackConversion records a conversion without deduplication.
	TrackConversion(ctx context.Context, in ConversionInput) (*TrackResult, error)
	// TrackAdblock records an adblock detection.
	TrackAdblock(ctx context.Context, client domain.Client) error

	// CreateAdvertisement validates and stores a new advertisement.
	CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error
	// TransitionCampaign moves a campaign along its lifecycle.
	TransitionCampaign(ctx context.Context, id int64, next domain.CampaignStatus) (*domain.Campaign, error)

	// GetStats returns aggregated stats for campaigns in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// PublicAd is the projection of an advertisement safe to hand to browsers:
// no counters and no campaign financials.
type PublicAd struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	AdType       domain.CreativeKind `json:"ad_type"`
	Image        string              `json:"image,omitempty"`
	VideoURL     string              `json:"video_url,omitempty"`
	HTMLContent  string              `json:"html_content,omitempty"`
	ScriptCode   string              `json:"script_code,omitempty"`
	Title        string              `json:"title,omitempty"`
	Description  string              `json:"description,omitempty"`
	Thumbnail    string              `json:"thumbnail,omitempty"`
	TargetURL    string              `json:"target_url"`
	OpenInNewTab bool                `json:"open_in_new_tab"`
	ZoneName     string              `json:"zone_name"`
	ZoneWidth    int                 `json:"zone_width"`
	ZoneHeight   int                 `json:"zone_height"`
}

// TrackStatus tells whether an event was counted.
type TrackStatus int

const (
	Recorded TrackStatus = iota + 1
	Deduplicated
)

// TrackResult is returned by the tracking operations. EventID is zero when
// the event was deduplicated.
type TrackResult struct {
	Status  TrackStatus
	EventID int64
}

type ImpressionInput struct {
	AdID    int64
	Client  domain.Client
	Content domain.ContentRef
}

type ClickInput struct {
	AdID         int64
	ImpressionID *int64
	Client       domain.Client
	Content      domain.ContentRef
}

type ConversionInput struct {
	AdID    int64
	ClickID *int64
	Type    domain.ConversionType
	Value   decimal.Decimal
	Notes   string
	Client  domain.Client
}
