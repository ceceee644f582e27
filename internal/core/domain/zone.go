package domain

import "time"

// PlacementType identifies where on a page a zone is rendered.
type PlacementType string

const (
	PlacementBannerTop       PlacementType = "banner_top"
	PlacementBannerBottom    PlacementType = "banner_bottom"
	PlacementSidebarTop      PlacementType = "sidebar_top"
	PlacementSidebarMiddle   PlacementType = "sidebar_middle"
	PlacementSidebarBottom   PlacementType = "sidebar_bottom"
	PlacementInArticleTop    PlacementType = "in_article_top"
	PlacementInArticleMiddle PlacementType = "in_article_middle"
	PlacementInArticleBottom PlacementType = "in_article_bottom"
	PlacementFloating        PlacementType = "floating"
	PlacementPopup           PlacementType = "popup"
	PlacementInterstitial    PlacementType = "interstitial"
	PlacementNative          PlacementType = "native"
)

// Zone is a named placement slot with fixed display dimensions. Only Active
// may change once advertisements reference the zone.
type Zone struct {
	ID          int64
	Name        string
	Type        PlacementType
	Width       int
	Height      int
	Description string
	Active      bool
	CreatedAt   time.Time
}
