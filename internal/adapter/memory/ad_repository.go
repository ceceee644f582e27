package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

// AdRepository implements port.AdRepository in process memory. Ad counters
// are atomic integers. Each campaign row serializes its writers and publishes
// an immutable copy after every change, so readers never wait on accruals.
type AdRepository struct {
	mu        sync.RWMutex
	zones     map[int64]domain.Zone
	campaigns map[int64]*campaignRow
	ads       map[int64]*adRow

	adSeq    atomic.Int64
	eventSeq atomic.Int64

	eventsMu    sync.Mutex
	eventAds    map[eventRef]int64
	impressions []domain.Impression
	clicks      []domain.Click
	conversions []domain.Conversion
	adblocks    []domain.AdblockDetection
}

type eventRef struct {
	kind domain.EventKind
	id   int64
}

type campaignRow struct {
	mu  sync.Mutex
	cur atomic.Pointer[domain.Campaign]
}

func newCampaignRow(c domain.Campaign) *campaignRow {
	row := &campaignRow{}
	row.cur.Store(&c)
	return row
}

func (r *campaignRow) snapshot() domain.Campaign {
	return *r.cur.Load()
}

// update applies fn to a copy of the current campaign and publishes the
// copy unless fn fails. Callers must not hold r.mu.
func (r *campaignRow) update(fn func(c *domain.Campaign) error) (domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := *r.cur.Load()
	if err := fn(&next); err != nil {
		return next, err
	}
	r.cur.Store(&next)
	return next, nil
}

type adRow struct {
	ad          domain.Advertisement
	impressions atomic.Int64
	clicks      atomic.Int64
	conversions atomic.Int64
}

func (r *adRow) snapshot() domain.Advertisement {
	ad := r.ad
	ad.Impressions = r.impressions.Load()
	ad.Clicks = r.clicks.Load()
	ad.Conversions = r.conversions.Load()
	return ad
}

var _ port.AdRepository = (*AdRepository)(nil)

// NewAdRepository returns an empty repository.
func NewAdRepository() *AdRepository {
	return &AdRepository{
		zones:     make(map[int64]domain.Zone),
		campaigns: make(map[int64]*campaignRow),
		ads:       make(map[int64]*adRow),
		eventAds:  make(map[eventRef]int64),
	}
}

// PutZone inserts or replaces a zone.
func (r *AdRepository) PutZone(z domain.Zone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.zones[z.ID] = z
}

// PutCampaign inserts or replaces a campaign.
func (r *AdRepository) PutCampaign(c domain.Campaign) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns[c.ID] = newCampaignRow(c)
}

// ListZones returns every zone.
func (r *AdRepository) ListZones(_ context.Context) ([]domain.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Zone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	return out, nil
}

// GetZone returns a zone by id.
func (r *AdRepository) GetZone(_ context.Context, id int64) (*domain.Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	z, ok := r.zones[id]
	if !ok {
		return nil, port.ErrZoneNotFound
	}
	return &z, nil
}

// ListZoneCandidates returns active advertisements in zoneID with their
// campaigns. The campaign filter is left to the caller.
func (r *AdRepository) ListZoneCandidates(_ context.Context, zoneID int64, _ time.Time) ([]port.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []port.Candidate
	for _, row := range r.ads {
		if row.ad.ZoneID != zoneID || !row.ad.Active {
			continue
		}
		camp, ok := r.campaigns[row.ad.CampaignID]
		if !ok {
			continue
		}
		out = append(out, port.Candidate{Ad: row.snapshot(), Campaign: camp.snapshot()})
	}
	return out, nil
}

// GetCandidate returns an advertisement and its campaign.
func (r *AdRepository) GetCandidate(_ context.Context, adID int64) (*port.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.ads[adID]
	if !ok {
		return nil, port.ErrAdNotFound
	}
	camp, ok := r.campaigns[row.ad.CampaignID]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return &port.Candidate{Ad: row.snapshot(), Campaign: camp.snapshot()}, nil
}

// CreateAdvertisement stores ad under a fresh id.
func (r *AdRepository) CreateAdvertisement(_ context.Context, ad *domain.Advertisement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[ad.CampaignID]; !ok {
		return port.ErrCampaignNotFound
	}
	if _, ok := r.zones[ad.ZoneID]; !ok {
		return port.ErrZoneNotFound
	}
	ad.ID = r.adSeq.Add(1)
	now := time.Now().UTC()
	ad.CreatedAt, ad.UpdatedAt = now, now
	row := &adRow{ad: *ad}
	row.impressions.Store(ad.Impressions)
	row.clicks.Store(ad.Clicks)
	row.conversions.Store(ad.Conversions)
	r.ads[ad.ID] = row
	return nil
}

// GetCampaign returns a campaign by id.
func (r *AdRepository) GetCampaign(_ context.Context, id int64) (*domain.Campaign, error) {
	r.mu.RLock()
	row, ok := r.campaigns[id]
	r.mu.RUnlock()
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	c := row.snapshot()
	return &c, nil
}

// UpdateCampaignStatus compares and sets the campaign status.
func (r *AdRepository) UpdateCampaignStatus(_ context.Context, id int64, from, next domain.CampaignStatus) error {
	r.mu.RLock()
	row, ok := r.campaigns[id]
	r.mu.RUnlock()
	if !ok {
		return port.ErrCampaignNotFound
	}
	_, err := row.update(func(c *domain.Campaign) error {
		if c.Status != from {
			return port.ErrStatusConflict
		}
		c.Status = next
		c.UpdatedAt = time.Now().UTC()
		return nil
	})
	return err
}

// RecordImpression stores imp and applies it to the counters.
func (r *AdRepository) RecordImpression(_ context.Context, imp *domain.Impression) (*domain.Campaign, error) {
	ad, camp, err := r.rows(imp.AdvertisementID)
	if err != nil {
		return nil, err
	}
	ad.impressions.Add(1)
	after := camp.apply(domain.EventImpression, imp.Cost)
	imp.ID = r.eventSeq.Add(1)
	imp.CampaignID = after.ID

	r.eventsMu.Lock()
	r.impressions = append(r.impressions, *imp)
	r.eventAds[eventRef{domain.EventImpression, imp.ID}] = imp.AdvertisementID
	r.eventsMu.Unlock()
	return &after, nil
}

// RecordClick stores click and applies it to the counters.
func (r *AdRepository) RecordClick(_ context.Context, click *domain.Click) (*domain.Campaign, error) {
	ad, camp, err := r.rows(click.AdvertisementID)
	if err != nil {
		return nil, err
	}
	ad.clicks.Add(1)
	after := camp.apply(domain.EventClick, click.Cost)
	click.ID = r.eventSeq.Add(1)
	click.CampaignID = after.ID

	r.eventsMu.Lock()
	r.clicks = append(r.clicks, *click)
	r.eventAds[eventRef{domain.EventClick, click.ID}] = click.AdvertisementID
	r.eventsMu.Unlock()
	return &after, nil
}

// RecordConversion stores conv and increments conversion counters.
func (r *AdRepository) RecordConversion(_ context.Context, conv *domain.Conversion) error {
	ad, camp, err := r.rows(conv.AdvertisementID)
	if err != nil {
		return err
	}
	ad.conversions.Add(1)
	after := camp.apply(domain.EventConversion, decimal.Zero)
	conv.ID = r.eventSeq.Add(1)
	conv.CampaignID = after.ID

	r.eventsMu.Lock()
	r.conversions = append(r.conversions, *conv)
	r.eventsMu.Unlock()
	return nil
}

// EventBelongsToAd reports whether the impression or click eventID was
// recorded for adID.
func (r *AdRepository) EventBelongsToAd(_ context.Context, kind domain.EventKind, eventID, adID int64) (bool, error) {
	r.eventsMu.Lock()
	defer r.eventsMu.Unlock()
	owner, ok := r.eventAds[eventRef{kind, eventID}]
	return ok && owner == adID, nil
}

// RecordAdblock stores det.
func (r *AdRepository) RecordAdblock(_ context.Context, det *domain.AdblockDetection) error {
	det.ID = r.eventSeq.Add(1)
	r.eventsMu.Lock()
	r.adblocks = append(r.adblocks, *det)
	r.eventsMu.Unlock()
	return nil
}

// GetStats aggregates stored events within the period.
func (r *AdRepository) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	in := func(campaignID int64, at time.Time) bool {
		if at.Before(req.From) || at.After(req.To) {
			return false
		}
		return req.CampaignID == nil || *req.CampaignID == campaignID
	}
	r.eventsMu.Lock()
	defer r.eventsMu.Unlock()
	var stats port.StatsResp
	for i := range r.impressions {
		if in(r.impressions[i].CampaignID, r.impressions[i].CreatedAt) {
			stats.Impressions++
			stats.Revenue = stats.Revenue.Add(r.impressions[i].Cost)
		}
	}
	for i := range r.clicks {
		if in(r.clicks[i].CampaignID, r.clicks[i].CreatedAt) {
			stats.Clicks++
			stats.Revenue = stats.Revenue.Add(r.clicks[i].Cost)
		}
	}
	for i := range r.conversions {
		if in(r.conversions[i].CampaignID, r.conversions[i].CreatedAt) {
			stats.Conversions++
		}
	}
	if req.CampaignID == nil {
		for i := range r.adblocks {
			at := r.adblocks[i].CreatedAt
			if !at.Before(req.From) && !at.After(req.To) {
				stats.AdblockDetections++
			}
		}
	}
	return &stats, nil
}

func (r *AdRepository) rows(adID int64) (*adRow, *campaignRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ad, ok := r.ads[adID]
	if !ok {
		return nil, nil, port.ErrAdNotFound
	}
	camp, ok := r.campaigns[ad.ad.CampaignID]
	if !ok {
		return nil, nil, port.ErrCampaignNotFound
	}
	return ad, camp, nil
}

func (r *campaignRow) apply(kind domain.EventKind, cost decimal.Decimal) domain.Campaign {
	c, _ := r.update(func(c *domain.Campaign) error {
		c.Apply(kind, cost)
		return nil
	})
	return c
}
