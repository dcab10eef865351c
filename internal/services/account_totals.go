package services

import (
	"context"
	"log/slog"
	"sync"

	"family-finance/internal/models"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// AccountTotals is a per-request facade over one family's balance sheet. The
// underlying rows are computed at most once per instance and both buckets are
// memoized; sync status is queried fresh during that single computation, so a
// facade must not be held across requests.
type AccountTotals struct {
	family  *models.Family
	query   *accountRowsQuery
	monitor SyncStatusMonitorInterface
	logger  *slog.Logger

	once        sync.Once
	assets      []models.EnrichedAccountRow
	liabilities []models.EnrichedAccountRow
	err         error
}

func newAccountTotals(
	family *models.Family,
	query *accountRowsQuery,
	monitor SyncStatusMonitorInterface,
	logger *slog.Logger,
) *AccountTotals {
	return &AccountTotals{
		family:  family,
		query:   query,
		monitor: monitor,
		logger:  logger,
	}
}

// AssetAccounts returns the family's visible asset rows, converted and
// enriched with sync status
func (t *AccountTotals) AssetAccounts(ctx context.Context) ([]models.EnrichedAccountRow, error) {
	t.computeOnce(ctx)
	if t.err != nil {
		return nil, t.err
	}
	return t.assets, nil
}

// LiabilityAccounts returns the family's visible liability rows, converted
// and enriched with sync status
func (t *AccountTotals) LiabilityAccounts(ctx context.Context) ([]models.EnrichedAccountRow, error) {
	t.computeOnce(ctx)
	if t.err != nil {
		return nil, t.err
	}
	return t.liabilities, nil
}

// AssetTotal sums the convertible asset balances in the family currency
func (t *AccountTotals) AssetTotal(ctx context.Context) (decimal.Decimal, error) {
	rows, err := t.AssetAccounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sumConverted(rows), nil
}

// LiabilityTotal sums the convertible liability balances in the family currency
func (t *AccountTotals) LiabilityTotal(ctx context.Context) (decimal.Decimal, error) {
	rows, err := t.LiabilityAccounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return sumConverted(rows), nil
}

func (t *AccountTotals) computeOnce(ctx context.Context) {
	t.once.Do(func() {
		rows, err := t.query.Execute(ctx)
		if err != nil {
			t.err = err
			return
		}

		enriched := t.enrich(rows)

		t.assets, t.liabilities = lo.FilterReject(enriched, func(row models.EnrichedAccountRow, _ int) bool {
			return row.Account.IsAsset()
		})
	})
}

// enrich annotates rows with a freshly queried sync flag. The sync oracle is
// best effort: when it fails, every account reads as not syncing.
func (t *AccountTotals) enrich(rows []models.AccountRow) []models.EnrichedAccountRow {
	syncing, err := t.monitor.SyncingAccountIDs(t.family.ID)
	if err != nil {
		t.logger.Warn("sync status lookup failed, defaulting accounts to not syncing",
			"family_id", t.family.ID,
			"error", err)
		syncing = nil
	}

	enriched := make([]models.EnrichedAccountRow, 0, len(rows))
	for _, row := range rows {
		_, isSyncing := syncing[row.Account.ID]
		enriched = append(enriched, models.EnrichedAccountRow{
			AccountRow: row,
			IsSyncing:  isSyncing,
		})
	}
	return enriched
}

func sumConverted(rows []models.EnrichedAccountRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row.ConvertedBalance.Valid {
			total = total.Add(row.ConvertedBalance.Decimal)
		}
	}
	return total
}
