package services

import (
	"context"
	"log/slog"
	"time"

	"family-finance/internal/cache"
	apperrors "family-finance/internal/errors"
	"family-finance/internal/models"
	"family-finance/internal/repositories"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// accountRowsQuery computes the per-account balance rows for one family,
// with each balance converted into the family's reporting currency. Results
// are served from the cache when a fresh entry exists; the cache key embeds
// the exchange rate version and the family data mutation marker, so a stale
// entry is simply never looked up.
type accountRowsQuery struct {
	family      *models.Family
	accountRepo repositories.AccountRepositoryInterface
	rateRepo    repositories.ExchangeRateRepositoryInterface
	store       cache.Store
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func newAccountRowsQuery(
	family *models.Family,
	accountRepo repositories.AccountRepositoryInterface,
	rateRepo repositories.ExchangeRateRepositoryInterface,
	store cache.Store,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *accountRowsQuery {
	return &accountRowsQuery{
		family:      family,
		accountRepo: accountRepo,
		rateRepo:    rateRepo,
		store:       store,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute returns the family's visible account rows, converted into the
// family currency. Cache failures degrade to a fresh computation and are
// never surfaced to the caller.
func (q *accountRowsQuery) Execute(ctx context.Context) ([]models.AccountRow, error) {
	currencies, err := q.accountRepo.DistinctVisibleCurrencies(q.family.ID)
	if err != nil {
		return nil, apperrors.NewDataFetchError("list visible account currencies", err)
	}

	foreign := lo.Filter(currencies, func(code string, _ int) bool {
		return code != q.family.Currency
	})

	ratesVersion, err := q.rateRepo.MaxUpdatedAt(foreign, q.family.Currency)
	if err != nil {
		// A wrong key would serve stale balances, so this one is fatal.
		return nil, apperrors.NewDataFetchError("resolve exchange rate version", err)
	}

	key := buildAccountRowsCacheKey(q.family, ratesVersion)

	var cached []models.AccountRow
	found, err := q.store.Get(ctx, key, &cached)
	if err != nil {
		q.metrics.RecordCacheEvent("error")
		q.logger.Warn("account rows cache read failed, computing fresh",
			"family_id", q.family.ID,
			"cache_key", key,
			"error", err)
	} else if found {
		q.metrics.RecordCacheEvent("hit")
		return cached, nil
	} else {
		q.metrics.RecordCacheEvent("miss")
	}

	rows, err := q.compute()
	if err != nil {
		return nil, err
	}

	if err := q.store.Set(ctx, key, rows); err != nil {
		q.metrics.RecordCacheEvent("write_error")
		q.logger.Warn("account rows cache write failed",
			"family_id", q.family.ID,
			"cache_key", key,
			"error", err)
	}

	return rows, nil
}

func (q *accountRowsQuery) compute() ([]models.AccountRow, error) {
	start := time.Now()

	accounts, err := q.accountRepo.VisibleByFamilyID(q.family.ID)
	if err != nil {
		return nil, apperrors.NewDataFetchError("list visible accounts", err)
	}

	foreign := lo.Uniq(lo.FilterMap(accounts, func(a models.Account, _ int) (string, bool) {
		return a.Currency, a.Currency != q.family.Currency
	}))

	today := models.DateOnly(time.Now().UTC())
	rates := map[string]decimal.Decimal{}
	if len(foreign) > 0 {
		rates, err = q.rateRepo.RatesForDate(foreign, q.family.Currency, today)
		if err != nil {
			return nil, apperrors.NewDataFetchError("load exchange rates", err)
		}
	}

	rows := make([]models.AccountRow, 0, len(accounts))
	for _, account := range accounts {
		row := models.AccountRow{Account: account}

		if account.Currency == q.family.Currency {
			row.ConvertedBalance = decimal.NewNullDecimal(account.Balance)
		} else if rate, ok := rates[account.Currency]; ok {
			row.ConvertedBalance = decimal.NewNullDecimal(account.Balance.Mul(rate))
		} else {
			row.MissingExchangeRate = true
		}

		rows = append(rows, row)
	}

	q.metrics.RecordAccountRows(len(rows))
	q.metrics.RecordAggregationDuration(float64(time.Since(start).Milliseconds()))

	return rows, nil
}
