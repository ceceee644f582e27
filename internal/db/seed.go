package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adzone/internal/adapter/memory"
	"adzone/internal/core/domain"
)

// Demo is a small catalog for local runs: a handful of zones, one
// advertiser, campaigns covering each pricing model and ads spread across
// the zones.
type Demo struct {
	Zones     []domain.Zone
	Campaigns []domain.Campaign
	Ads       []domain.Advertisement
}

// NewDemo builds the demo catalog relative to now.
func NewDemo(now time.Time) Demo {
	r := rand.New(rand.NewSource(now.UnixNano()))
	zones := []domain.Zone{
		{ID: 1, Name: "Header leaderboard", Type: domain.PlacementBannerTop, Width: 728, Height: 90, Active: true},
		{ID: 2, Name: "Sidebar rectangle", Type: domain.PlacementSidebarTop, Width: 300, Height: 250, Active: true},
		{ID: 3, Name: "In-article native", Type: domain.PlacementInArticleMiddle, Width: 640, Height: 360, Active: true},
	}
	models := []domain.PricingModel{domain.PricingCPM, domain.PricingCPC, domain.PricingCPA, domain.PricingFlat}
	var (
		campaigns []domain.Campaign
		ads       []domain.Advertisement
	)
	for i, model := range models {
		id := int64(i + 1)
		c := domain.Campaign{
			ID:           id,
			AdvertiserID: 1,
			Name:         fmt.Sprintf("Campaign %d (%s)", id, model),
			Status:       domain.StatusActive,
			PricingModel: model,
			Budget:       decimal.NewNullDecimal(decimal.NewFromInt(5000)),
			DailyBudget:  decimal.NewNullDecimal(decimal.NewFromInt(1000)),
			CPMPrice:     decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
			CPCPrice:     decimal.NewNullDecimal(decimal.RequireFromString("0.75")),
			CPAPrice:     decimal.NewNullDecimal(decimal.RequireFromString("4.00")),
			StartDate:    now.AddDate(0, 0, -1),
			EndDate:      now.AddDate(0, 1, 0),
		}
		campaigns = append(campaigns, c)
		for j := range zones {
			adID := int64(i*len(zones) + j + 1)
			ads = append(ads, domain.Advertisement{
				ID:           adID,
				CampaignID:   id,
				ZoneID:       zones[j].ID,
				Name:         fmt.Sprintf("Creative %d", adID),
				Creative:     domain.ImageCreative{ImageURL: fmt.Sprintf("https://cdn.example.com/ads/%d.png", adID)},
				TargetURL:    fmt.Sprintf("https://example.com/landing/%d", adID),
				OpenInNewTab: true,
				Weight:       5 + r.Intn(20),
				Priority:     r.Intn(domain.MaxPriority + 1),
				Active:       true,
			})
		}
	}
	return Demo{Zones: zones, Campaigns: campaigns, Ads: ads}
}

// SeedMemory loads d into an in-memory repository. Advertisement ids are
// reassigned by the repository in insertion order.
func SeedMemory(ctx context.Context, repo *memory.AdRepository, d Demo) error {
	for _, z := range d.Zones {
		repo.PutZone(z)
	}
	for _, c := range d.Campaigns {
		repo.PutCampaign(c)
	}
	for i := range d.Ads {
		ad := d.Ads[i]
		if err := repo.CreateAdvertisement(ctx, &ad); err != nil {
			return err
		}
	}
	return nil
}

// Seed inserts d into the database. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool, d Demo) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO advertisers (id, name, email) VALUES (1, 'Demo Advertiser', 'ads@example.com') ON CONFLICT DO NOTHING`); err != nil {
			return err
		}
		for _, z := range d.Zones {
			_, err := tx.Exec(ctx, `INSERT INTO zones (id, name, zone_type, width, height, is_active)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`, z.ID, z.Name, z.Type, z.Width, z.Height, z.Active)
			if err != nil {
				return err
			}
		}
		for _, c := range d.Campaigns {
			_, err := tx.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, status, pricing_model, budget, daily_budget, cpm_price, cpc_price, cpa_price, start_date, end_date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) ON CONFLICT DO NOTHING`,
				c.ID, c.AdvertiserID, c.Name, c.Status, c.PricingModel, c.Budget, c.DailyBudget,
				c.CPMPrice, c.CPCPrice, c.CPAPrice, c.StartDate, c.EndDate)
			if err != nil {
				return err
			}
		}
		for _, ad := range d.Ads {
			creative, err := domain.MarshalCreative(ad.Creative)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, `INSERT INTO advertisements
    (id, campaign_id, zone_id, name, creative, target_url, open_in_new_tab, weight, priority, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT DO NOTHING`,
				ad.ID, ad.CampaignID, ad.ZoneID, ad.Name, creative, ad.TargetURL, ad.OpenInNewTab, ad.Weight, ad.Priority, ad.Active)
			if err != nil {
				return err
			}
		}
		// advance sequences past the explicit ids
		for _, table := range []string{"advertisers", "zones", "campaigns", "advertisements"} {
			q := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %[1]s))`, table)
			if _, err := tx.Exec(ctx, q); err != nil {
				return err
			}
		}
		return nil
	})
}
