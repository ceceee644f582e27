package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Counters and spend are only changed with UPDATE ... SET x = x + n so
// concurrent writers never lose an increment.
type AdRepository struct {
	pool DB
}

var _ port.AdRepository = (*AdRepository)(nil)

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool DB) *AdRepository {
	return &AdRepository{pool: pool}
}

const zoneColumns = `id, name, zone_type, width, height, description, is_active, created_at`

const campaignColumns = `c.id, c.advertiser_id, c.name, c.status, c.pricing_model, c.budget, c.spent,
    c.daily_budget, c.cpm_price, c.cpc_price, c.cpa_price, c.max_impressions, c.max_clicks,
    c.start_date, c.end_date, c.total_impressions, c.total_clicks, c.total_conversions,
    c.created_at, c.updated_at`

const adColumns = `a.id, a.campaign_id, a.zone_id, a.name, a.creative, a.target_url, a.open_in_new_tab,
    a.weight, a.priority, a.is_active, a.impressions, a.clicks, a.conversions, a.created_at, a.updated_at`

// ListZones returns every zone.
func (r *AdRepository) ListZones(ctx context.Context) ([]domain.Zone, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+zoneColumns+` FROM zones ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Zone, error) {
		return scanZone(row)
	})
}

// GetZone returns a zone by id.
func (r *AdRepository) GetZone(ctx context.Context, id int64) (*domain.Zone, error) {
	z, err := scanZone(r.pool.QueryRow(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

// ListZoneCandidates returns active advertisements in the zone whose
// campaign is active-status and inside its window at now. Budget and caps
// are checked by the caller against the returned snapshot.
func (r *AdRepository) ListZoneCandidates(ctx context.Context, zoneID int64, now time.Time) ([]port.Candidate, error) {
	query := `
        SELECT ` + adColumns + `, ` + campaignColumns + `
        FROM advertisements a
        JOIN campaigns c ON a.campaign_id = c.id
        WHERE a.zone_id = $1
          AND a.is_active
          AND c.status = 'active'
          AND $2 BETWEEN c.start_date AND c.end_date
        ORDER BY a.id`
	rows, err := r.pool.Query(ctx, query, zoneID, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Candidate, error) {
		return scanCandidate(row)
	})
}

// GetCandidate returns an advertisement with its campaign.
func (r *AdRepository) GetCandidate(ctx context.Context, adID int64) (*port.Candidate, error) {
	query := `SELECT ` + adColumns + `, ` + campaignColumns + `
        FROM advertisements a JOIN campaigns c ON a.campaign_id = c.id
        WHERE a.id = $1`
	cand, err := scanCandidate(r.pool.QueryRow(ctx, query, adID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrAdNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cand, nil
}

// CreateAdvertisement inserts ad and fills its id and timestamps.
func (r *AdRepository) CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	creative, err := domain.MarshalCreative(ad.Creative)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `INSERT INTO advertisements
    (campaign_id, zone_id, name, creative, target_url, open_in_new_tab, weight, priority, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id, created_at, updated_at`,
		ad.CampaignID, ad.ZoneID, ad.Name, creative, ad.TargetURL, ad.OpenInNewTab, ad.Weight, ad.Priority, ad.Active,
	).Scan(&ad.ID, &ad.CreatedAt, &ad.UpdatedAt)
}

// GetCampaign returns a campaign by id.
func (r *AdRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaignStatus sets status to next where it is still from.
func (r *AdRepository) UpdateCampaignStatus(ctx context.Context, id int64, from, next domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, string(from), string(next))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err = r.GetCampaign(ctx, id); err != nil {
			return err
		}
		return port.ErrStatusConflict
	}
	return nil
}

// RecordImpression increments counters, accrues imp.Cost and inserts the
// impression in one transaction.
func (r *AdRepository) RecordImpression(ctx context.Context, imp *domain.Impression) (*domain.Campaign, error) {
	var camp domain.Campaign
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		campaignID, err := bumpAd(ctx, tx, "impressions", imp.AdvertisementID)
		if err != nil {
			return err
		}
		camp, err = accrue(ctx, tx, "total_impressions", campaignID, imp.Cost)
		if err != nil {
			return err
		}
		imp.CampaignID = campaignID
		kind, contentID := contentArgs(imp.Content)
		c := imp.Client
		return tx.QueryRow(ctx, `INSERT INTO impressions
    (token, advertisement_id, campaign_id, user_id, ip_address, user_agent, page_url, referrer,
     device_type, browser, os, country, city, content_kind, content_id, cost, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
RETURNING id`,
			imp.Token, imp.AdvertisementID, imp.CampaignID, c.UserID, c.IP, c.UserAgent, c.PageURL, c.Referrer,
			c.DeviceType, c.Browser, c.OS, c.Country, c.City, kind, contentID, imp.Cost, imp.CreatedAt,
		).Scan(&imp.ID)
	})
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// RecordClick increments counters, accrues click.Cost and inserts the click
// in one transaction.
func (r *AdRepository) RecordClick(ctx context.Context, click *domain.Click) (*domain.Campaign, error) {
	var camp domain.Campaign
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		campaignID, err := bumpAd(ctx, tx, "clicks", click.AdvertisementID)
		if err != nil {
			return err
		}
		camp, err = accrue(ctx, tx, "total_clicks", campaignID, click.Cost)
		if err != nil {
			return err
		}
		click.CampaignID = campaignID
		kind, contentID := contentArgs(click.Content)
		c := click.Client
		return tx.QueryRow(ctx, `INSERT INTO clicks
    (token, advertisement_id, campaign_id, impression_id, user_id, ip_address, user_agent, page_url,
     device_type, country, city, content_kind, content_id, cost, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
RETURNING id`,
			click.Token, click.AdvertisementID, click.CampaignID, click.ImpressionID, c.UserID, c.IP, c.UserAgent, c.PageURL,
			c.DeviceType, c.Country, c.City, kind, contentID, click.Cost, click.CreatedAt,
		).Scan(&click.ID)
	})
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// RecordConversion increments conversion counters and inserts conv. Spend
// is not touched.
func (r *AdRepository) RecordConversion(ctx context.Context, conv *domain.Conversion) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		campaignID, err := bumpAd(ctx, tx, "conversions", conv.AdvertisementID)
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, `UPDATE campaigns SET total_conversions = total_conversions + 1, updated_at = now() WHERE id = $1`, campaignID); err != nil {
			return err
		}
		conv.CampaignID = campaignID
		return tx.QueryRow(ctx, `INSERT INTO conversions
    (token, advertisement_id, campaign_id, click_id, conversion_type, conversion_value, user_id, ip_address, notes, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id`,
			conv.Token, conv.AdvertisementID, conv.CampaignID, conv.ClickID, string(conv.Type), conv.Value,
			conv.Client.UserID, conv.Client.IP, conv.Notes, conv.CreatedAt,
		).Scan(&conv.ID)
	})
}

// EventBelongsToAd reports whether the impression or click eventID was
// recorded for adID.
func (r *AdRepository) EventBelongsToAd(ctx context.Context, kind domain.EventKind, eventID, adID int64) (bool, error) {
	var table string
	switch kind {
	case domain.EventImpression:
		table = "impressions"
	case domain.EventClick:
		table = "clicks"
	default:
		return false, fmt.Errorf("%s events cannot be referenced", kind)
	}
	var ok bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1 AND advertisement_id = $2)`, table)
	if err := r.pool.QueryRow(ctx, query, eventID, adID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// RecordAdblock inserts det.
func (r *AdRepository) RecordAdblock(ctx context.Context, det *domain.AdblockDetection) error {
	c := det.Client
	return r.pool.QueryRow(ctx, `INSERT INTO adblock_detections (ip_address, user_id, user_agent, page_url, created_at)
VALUES ($1,$2,$3,$4,$5) RETURNING id`, c.IP, c.UserID, c.UserAgent, c.PageURL, det.CreatedAt).Scan(&det.ID)
}

// GetStats returns aggregated events for campaigns.
func (r *AdRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	var stats port.StatsResp

	impQuery := fmt.Sprintf(`SELECT count(*), COALESCE(sum(cost),0) FROM impressions WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	var impCost, clickCost decimal.Decimal
	if err := r.pool.QueryRow(ctx, impQuery, args...).Scan(&stats.Impressions, &impCost); err != nil {
		return nil, err
	}
	clickQuery := fmt.Sprintf(`SELECT count(*), COALESCE(sum(cost),0) FROM clicks WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, clickQuery, args...).Scan(&stats.Clicks, &clickCost); err != nil {
		return nil, err
	}
	convQuery := fmt.Sprintf(`SELECT count(*) FROM conversions WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, convQuery, args...).Scan(&stats.Conversions); err != nil {
		return nil, err
	}
	if req.CampaignID == nil {
		err := r.pool.QueryRow(ctx, `SELECT count(*) FROM adblock_detections WHERE created_at >= $1 AND created_at <= $2`,
			req.From, req.To).Scan(&stats.AdblockDetections)
		if err != nil {
			return nil, err
		}
	}
	stats.Revenue = impCost.Add(clickCost)
	return &stats, nil
}

// withTx runs fn in a transaction, committing on success.
func (r *AdRepository) withTx(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// bumpAd increments one advertisement counter and returns its campaign id.
func bumpAd(ctx context.Context, tx pgx.Tx, column string, adID int64) (int64, error) {
	var campaignID int64
	query := fmt.Sprintf(`UPDATE advertisements SET %[1]s = %[1]s + 1, updated_at = now() WHERE id = $1 RETURNING campaign_id`, column)
	err := tx.QueryRow(ctx, query, adID).Scan(&campaignID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrAdNotFound
	}
	return campaignID, err
}

// accrue increments a campaign total and adds cost to spent, returning the
// campaign after the write.
func accrue(ctx context.Context, tx pgx.Tx, column string, campaignID int64, cost decimal.Decimal) (domain.Campaign, error) {
	query := fmt.Sprintf(`UPDATE campaigns c SET %[1]s = %[1]s + 1, spent = spent + $2, updated_at = now()
        WHERE c.id = $1 RETURNING `+campaignColumns, column)
	camp, err := scanCampaign(tx.QueryRow(ctx, query, campaignID, cost))
	if errors.Is(err, pgx.ErrNoRows) {
		return camp, port.ErrCampaignNotFound
	}
	return camp, err
}

func contentArgs(ref domain.ContentRef) (any, any) {
	if ref.IsZero() {
		return nil, nil
	}
	return string(ref.Kind), ref.ID
}
