package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExchangeRate_Validate(t *testing.T) {
	validDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rate    ExchangeRate
		wantErr error
	}{
		{
			name: "valid rate",
			rate: ExchangeRate{
				FromCurrency: "EUR",
				ToCurrency:   "USD",
				Date:         validDate,
				Rate:         decimal.RequireFromString("1.1"),
			},
		},
		{
			name: "invalid from currency",
			rate: ExchangeRate{
				FromCurrency: "eur",
				ToCurrency:   "USD",
				Date:         validDate,
				Rate:         decimal.RequireFromString("1.1"),
			},
			wantErr: ErrInvalidRateCurrency,
		},
		{
			name: "invalid to currency",
			rate: ExchangeRate{
				FromCurrency: "EUR",
				ToCurrency:   "US",
				Date:         validDate,
				Rate:         decimal.RequireFromString("1.1"),
			},
			wantErr: ErrInvalidRateCurrency,
		},
		{
			name: "same currencies",
			rate: ExchangeRate{
				FromCurrency: "USD",
				ToCurrency:   "USD",
				Date:         validDate,
				Rate:         decimal.RequireFromString("1"),
			},
			wantErr: ErrSameRateCurrency,
		},
		{
			name: "zero rate",
			rate: ExchangeRate{
				FromCurrency: "EUR",
				ToCurrency:   "USD",
				Date:         validDate,
				Rate:         decimal.Zero,
			},
			wantErr: ErrNonPositiveRate,
		},
		{
			name: "negative rate",
			rate: ExchangeRate{
				FromCurrency: "EUR",
				ToCurrency:   "USD",
				Date:         validDate,
				Rate:         decimal.RequireFromString("-0.5"),
			},
			wantErr: ErrNonPositiveRate,
		},
		{
			name: "missing date",
			rate: ExchangeRate{
				FromCurrency: "EUR",
				ToCurrency:   "USD",
				Rate:         decimal.RequireFromString("1.1"),
			},
			wantErr: ErrRateDateRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rate.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	// Afternoon timestamps truncate to midnight UTC
	afternoon := time.Date(2026, 3, 15, 14, 33, 52, 123456789, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), DateOnly(afternoon))

	// Non-UTC inputs convert to UTC before truncating
	est := time.FixedZone("EST", -5*3600)
	lateEvening := time.Date(2026, 3, 15, 22, 0, 0, 0, est)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), DateOnly(lateEvening))

	// Midnight UTC is a fixed point
	midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, DateOnly(midnight))
}
