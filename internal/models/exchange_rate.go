package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidRateCurrency = errors.New("exchange rate currencies must be 3-letter ISO 4217 codes")
	ErrSameRateCurrency    = errors.New("from and to currencies must differ")
	ErrNonPositiveRate     = errors.New("exchange rate must be positive")
	ErrRateDateRequired    = errors.New("exchange rate date is required")
)

// ExchangeRate is the conversion rate between two currencies on a specific
// date. Lookups are same-day only; there is no historical-date fallback.
type ExchangeRate struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FromCurrency string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair_date" json:"from_currency"`
	ToCurrency   string          `gorm:"type:varchar(3);not null;uniqueIndex:idx_exchange_rates_pair_date" json:"to_currency"`
	Date         time.Time       `gorm:"not null;uniqueIndex:idx_exchange_rates_pair_date" json:"date"`
	Rate         decimal.Decimal `gorm:"type:decimal(24,12);not null" json:"rate"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;index" json:"updated_at"`
}

// BeforeCreate hook for ExchangeRate
func (r *ExchangeRate) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	// Normalize to midnight UTC so same-day equality lookups are exact.
	r.Date = DateOnly(r.Date)

	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// Validate validates the exchange rate fields
func (r *ExchangeRate) Validate() error {
	if !IsValidCurrencyCode(r.FromCurrency) || !IsValidCurrencyCode(r.ToCurrency) {
		return ErrInvalidRateCurrency
	}

	if r.FromCurrency == r.ToCurrency {
		return ErrSameRateCurrency
	}

	if r.Date.IsZero() {
		return ErrRateDateRequired
	}

	if !r.Rate.IsPositive() {
		return ErrNonPositiveRate
	}

	return nil
}

// TableName returns the table name for ExchangeRate
func (r *ExchangeRate) TableName() string {
	return "exchange_rates"
}

// DateOnly truncates a timestamp to midnight UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
