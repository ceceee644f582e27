package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

var campaignCols = []string{
	"id", "advertiser_id", "name", "status", "pricing_model", "budget", "spent",
	"daily_budget", "cpm_price", "cpc_price", "cpa_price", "max_impressions", "max_clicks",
	"start_date", "end_date", "total_impressions", "total_clicks", "total_conversions",
	"created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*AdRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewAdRepository(mock), mock
}

func campaignRows(c domain.Campaign) *pgxmock.Rows {
	return pgxmock.NewRows(campaignCols).AddRow(
		c.ID, c.AdvertiserID, c.Name, string(c.Status), string(c.PricingModel), c.Budget, c.Spent,
		c.DailyBudget, c.CPMPrice, c.CPCPrice, c.CPAPrice, c.MaxImpressions, c.MaxClicks,
		c.StartDate, c.EndDate, c.TotalImpressions, c.TotalClicks, c.TotalConversions,
		c.CreatedAt, c.UpdatedAt,
	)
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func storedCampaign() domain.Campaign {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	maxImps := int64(1000)
	return domain.Campaign{
		ID:               9,
		AdvertiserID:     4,
		Name:             "spring",
		Status:           domain.StatusActive,
		PricingModel:     domain.PricingCPM,
		Budget:           decimal.NewNullDecimal(decimal.NewFromInt(100)),
		Spent:            decimal.RequireFromString("12.01"),
		CPMPrice:         decimal.NewNullDecimal(decimal.NewFromInt(10)),
		MaxImpressions:   &maxImps,
		StartDate:        start,
		EndDate:          start.AddDate(0, 1, 0),
		TotalImpressions: 1201,
		CreatedAt:        start,
		UpdatedAt:        start,
	}
}

func TestRecordImpressionAccruesInTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	cost := decimal.RequireFromString("0.01")
	stored := storedCampaign()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE advertisements SET impressions = impressions + 1`)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_id"}).AddRow(int64(9)))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE campaigns c SET total_impressions = total_impressions + 1, spent = spent + $2`)).
		WithArgs(int64(9), cost).
		WillReturnRows(campaignRows(stored))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO impressions`)).
		WithArgs(anyArgs(17)...).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(55)))
	mock.ExpectCommit()

	imp := &domain.Impression{AdvertisementID: 3, Cost: cost, CreatedAt: time.Now()}
	camp, err := repo.RecordImpression(context.Background(), imp)
	require.NoError(t, err)

	assert.Equal(t, int64(55), imp.ID)
	assert.Equal(t, int64(9), imp.CampaignID)
	assert.Equal(t, domain.StatusActive, camp.Status)
	assert.Equal(t, domain.PricingCPM, camp.PricingModel)
	assert.True(t, camp.Spent.Equal(decimal.RequireFromString("12.01")))
	assert.True(t, camp.Budget.Valid)
	assert.True(t, camp.Budget.Decimal.Equal(decimal.NewFromInt(100)))
	assert.False(t, camp.CPCPrice.Valid)
	require.NotNil(t, camp.MaxImpressions)
	assert.Equal(t, int64(1000), *camp.MaxImpressions)
	assert.Nil(t, camp.MaxClicks)
	assert.Equal(t, int64(1201), camp.TotalImpressions)
}

func TestRecordImpressionUnknownAdRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE advertisements SET impressions = impressions + 1`)).
		WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.RecordImpression(context.Background(), &domain.Impression{AdvertisementID: 404})
	assert.ErrorIs(t, err, port.ErrAdNotFound)
}

func TestRecordClickMissingCampaignRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	cost := decimal.NewFromInt(2)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE advertisements SET clicks = clicks + 1`)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"campaign_id"}).AddRow(int64(9)))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE campaigns c SET total_clicks = total_clicks + 1, spent = spent + $2`)).
		WithArgs(int64(9), cost).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.RecordClick(context.Background(), &domain.Click{AdvertisementID: 3, Cost: cost})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestUpdateCampaignStatus(t *testing.T) {
	const update = `UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`
	const get = `FROM campaigns c WHERE c.id = $1`

	tests := []struct {
		name    string
		expect  func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "applied",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(update)).
					WithArgs(int64(9), "active", "paused").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "status moved",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(update)).
					WithArgs(int64(9), "active", "paused").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				stored := storedCampaign()
				stored.Status = domain.StatusCompleted
				mock.ExpectQuery(regexp.QuoteMeta(get)).
					WithArgs(int64(9)).
					WillReturnRows(campaignRows(stored))
			},
			wantErr: port.ErrStatusConflict,
		},
		{
			name: "missing",
			expect: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(update)).
					WithArgs(int64(9), "active", "paused").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectQuery(regexp.QuoteMeta(get)).
					WithArgs(int64(9)).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: port.ErrCampaignNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.expect(mock)

			err := repo.UpdateCampaignStatus(context.Background(), 9, domain.StatusActive, domain.StatusPaused)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEventBelongsToAd(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM impressions WHERE id = $1 AND advertisement_id = $2)`)).
		WithArgs(int64(999999), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM clicks WHERE id = $1 AND advertisement_id = $2)`)).
		WithArgs(int64(7), int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.EventBelongsToAd(ctx, domain.EventImpression, 999999, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.EventBelongsToAd(ctx, domain.EventClick, 7, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.EventBelongsToAd(ctx, domain.EventConversion, 1, 1)
	assert.Error(t, err)
}

func TestGetCandidateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE a.id = $1`)).
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetCandidate(context.Background(), 5)
	assert.ErrorIs(t, err, port.ErrAdNotFound)
}
