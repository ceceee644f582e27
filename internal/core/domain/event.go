package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// DedupWindow is how long repeat impressions or clicks from the same IP on the
// same advertisement are suppressed. It must never exceed one minute.
const DedupWindow = 60 * time.Second

var ErrUnknownConversionType = errors.New("unknown conversion type")

// ContentKind tags what kind of page content an event was shown next to.
type ContentKind string

const (
	ContentArticle  ContentKind = "article"
	ContentCategory ContentKind = "category"
	ContentTag      ContentKind = "tag"
	ContentPage     ContentKind = "page"
)

// ContentRef points at the content surrounding an ad. The zero value means
// no content was reported.
type ContentRef struct {
	Kind ContentKind `json:"kind"`
	ID   int64       `json:"id"`
}

// IsZero reports whether no content reference is set.
func (r ContentRef) IsZero() bool { return r.Kind == "" }

// Client holds request metadata common to all events.
type Client struct {
	UserID     *int64
	IP         string
	UserAgent  string
	PageURL    string
	Referrer   string
	DeviceType string
	Browser    string
	OS         string
	Country    string
	City       string
}

// Impression is a recorded view of an advertisement.
type Impression struct {
	ID              int64
	Token           string
	AdvertisementID int64
	CampaignID      int64
	Client          Client
	Content         ContentRef
	Cost            decimal.Decimal
	CreatedAt       time.Time
}

// Click is a recorded click, optionally attributed to an impression.
type Click struct {
	ID              int64
	Token           string
	AdvertisementID int64
	CampaignID      int64
	ImpressionID    *int64
	Client          Client
	Content         ContentRef
	Cost            decimal.Decimal
	CreatedAt       time.Time
}

// ConversionType tags the action a conversion represents.
type ConversionType string

const (
	ConversionRegistration ConversionType = "registration"
	ConversionSubscription ConversionType = "subscription"
	ConversionPurchase     ConversionType = "purchase"
	ConversionLead         ConversionType = "lead"
	ConversionDownload     ConversionType = "download"
	ConversionCustom       ConversionType = "custom"
)

// Valid reports whether t is a known conversion type.
func (t ConversionType) Valid() bool {
	switch t {
	case ConversionRegistration, ConversionSubscription, ConversionPurchase,
		ConversionLead, ConversionDownload, ConversionCustom:
		return true
	}
	return false
}

// Conversion is a recorded action. Value is informational and is never
// added to campaign spend.
type Conversion struct {
	ID              int64
	Token           string
	AdvertisementID int64
	CampaignID      int64
	ClickID         *int64
	Type            ConversionType
	Value           decimal.Decimal
	Client          Client
	Notes           string
	CreatedAt       time.Time
}

// AdblockDetection records a page view where the ad slot was blocked.
type AdblockDetection struct {
	ID        int64
	Client    Client
	CreatedAt time.Time
}
