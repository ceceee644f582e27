package postgres

import (
	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanZone(row scanner) (domain.Zone, error) {
	var (
		z    domain.Zone
		kind string
	)
	err := row.Scan(&z.ID, &z.Name, &kind, &z.Width, &z.Height, &z.Description, &z.Active, &z.CreatedAt)
	z.Type = domain.PlacementType(kind)
	return z, err
}

func campaignDest(c *domain.Campaign, status, pricing *string) []any {
	return []any{
		&c.ID, &c.AdvertiserID, &c.Name, status, pricing, &c.Budget, &c.Spent,
		&c.DailyBudget, &c.CPMPrice, &c.CPCPrice, &c.CPAPrice, &c.MaxImpressions, &c.MaxClicks,
		&c.StartDate, &c.EndDate, &c.TotalImpressions, &c.TotalClicks, &c.TotalConversions,
		&c.CreatedAt, &c.UpdatedAt,
	}
}

func scanCampaign(row scanner) (domain.Campaign, error) {
	var (
		c               domain.Campaign
		status, pricing string
	)
	if err := row.Scan(campaignDest(&c, &status, &pricing)...); err != nil {
		return c, err
	}
	c.Status = domain.CampaignStatus(status)
	c.PricingModel = domain.PricingModel(pricing)
	return c, nil
}

// scanCandidate reads adColumns followed by campaignColumns.
func scanCandidate(row scanner) (port.Candidate, error) {
	var (
		cand            port.Candidate
		creative        []byte
		status, pricing string
	)
	a := &cand.Ad
	dest := []any{
		&a.ID, &a.CampaignID, &a.ZoneID, &a.Name, &creative, &a.TargetURL, &a.OpenInNewTab,
		&a.Weight, &a.Priority, &a.Active, &a.Impressions, &a.Clicks, &a.Conversions, &a.CreatedAt, &a.UpdatedAt,
	}
	dest = append(dest, campaignDest(&cand.Campaign, &status, &pricing)...)
	if err := row.Scan(dest...); err != nil {
		return cand, err
	}
	cand.Campaign.Status = domain.CampaignStatus(status)
	cand.Campaign.PricingModel = domain.PricingModel(pricing)

	c, err := domain.UnmarshalCreative(creative)
	if err != nil {
		return cand, err
	}
	a.Creative = c
	return cand, nil
}
