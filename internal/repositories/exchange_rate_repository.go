package repositories

import (
	"errors"
	"fmt"
	"time"

	"family-finance/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// exchangeRateRepository implements ExchangeRateRepositoryInterface
type exchangeRateRepository struct {
	db *gorm.DB
}

// NewExchangeRateRepository creates a new exchange rate repository
func NewExchangeRateRepository(db *gorm.DB) ExchangeRateRepositoryInterface {
	return &exchangeRateRepository{
		db: db,
	}
}

// Upsert inserts or refreshes the rate for its (from, to, date) pair. Every
// touched family sees a fresh updated_at, which feeds the cache key version.
func (r *exchangeRateRepository) Upsert(rate *models.ExchangeRate) error {
	rate.Date = models.DateOnly(rate.Date)
	rate.UpdatedAt = time.Now().UTC()

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "from_currency"},
			{Name: "to_currency"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
	}).Create(rate).Error
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate: %w", err)
	}

	return nil
}

// MaxUpdatedAt returns the freshest updated_at (epoch seconds) across rates
// from any of the given currencies into the target currency. Nil when the
// currency set is empty or no rate matches.
func (r *exchangeRateRepository) MaxUpdatedAt(fromCurrencies []string, toCurrency string) (*int64, error) {
	if len(fromCurrencies) == 0 {
		return nil, nil
	}

	var freshest models.ExchangeRate
	err := r.db.Where("from_currency IN ? AND to_currency = ?", fromCurrencies, toCurrency).
		Order("updated_at DESC").
		First(&freshest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get max exchange rate updated_at: %w", err)
	}

	version := freshest.UpdatedAt.Unix()
	return &version, nil
}

// RateForDate returns the same-day rate for one pair, or nil when absent
func (r *exchangeRateRepository) RateForDate(fromCurrency, toCurrency string, date time.Time) (*decimal.Decimal, error) {
	var rate models.ExchangeRate
	err := r.db.Where("from_currency = ? AND to_currency = ? AND date = ?",
		fromCurrency, toCurrency, models.DateOnly(date)).
		First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	return &rate.Rate, nil
}

// RatesForDate returns the same-day rates into the target currency, keyed by
// source currency. Currencies with no rate row are simply absent from the map.
func (r *exchangeRateRepository) RatesForDate(fromCurrencies []string, toCurrency string, date time.Time) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal, len(fromCurrencies))
	if len(fromCurrencies) == 0 {
		return rates, nil
	}

	var rows []models.ExchangeRate
	err := r.db.Where("from_currency IN ? AND to_currency = ? AND date = ?",
		fromCurrencies, toCurrency, models.DateOnly(date)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rates for date: %w", err)
	}

	for _, row := range rows {
		rates[row.FromCurrency] = row.Rate
	}

	return rates, nil
}
