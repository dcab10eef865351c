package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRow is one aggregated balance-sheet row: an account with its balance
// converted into the family's reporting currency. Rows are cache-resident, so
// everything here must survive a JSON round trip without losing decimal
// precision.
//
// ConvertedBalance is invalid (null) when no component of the group could be
// converted. When a rate was missing, the value covers only the convertible
// components and MissingExchangeRate is set; treat it as a degraded display
// value, not a correct total.
type AccountRow struct {
	Account             Account             `json:"account"`
	ConvertedBalance    decimal.NullDecimal `json:"converted_balance"`
	MissingExchangeRate bool                `json:"missing_exchange_rate"`
}

// AccountID returns the underlying account's id
func (r AccountRow) AccountID() uuid.UUID {
	return r.Account.ID
}

// Name returns the underlying account's name
func (r AccountRow) Name() string {
	return r.Account.Name
}

// Classification returns the underlying account's classification
func (r AccountRow) Classification() string {
	return r.Account.Classification
}

// AccountableType returns the underlying account's subtype discriminator
func (r AccountRow) AccountableType() string {
	return r.Account.AccountableType
}

// Currency returns the account's own currency, not the reporting currency
func (r AccountRow) Currency() string {
	return r.Account.Currency
}

// Balance returns the unconverted balance in the account's own currency
func (r AccountRow) Balance() decimal.Decimal {
	return r.Account.Balance
}

// MissingRate reports whether a same-day exchange rate was unavailable
func (r AccountRow) MissingRate() bool {
	return r.MissingExchangeRate
}

// EnrichedAccountRow is an AccountRow annotated with a freshly queried sync
// flag. It is rebuilt on every request and never cached: sync status changes
// independently of balances.
type EnrichedAccountRow struct {
	AccountRow
	IsSyncing bool `json:"is_syncing"`
}

// Syncing reports whether the account had a sync in flight at enrichment time
func (r EnrichedAccountRow) Syncing() bool {
	return r.IsSyncing
}
