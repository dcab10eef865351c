package repositories

import (
	"time"

	"family-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FamilyRepositoryInterface defines the contract for family repository operations
type FamilyRepositoryInterface interface {
	Create(family *models.Family) error
	GetByID(id uuid.UUID) (*models.Family, error)
	TouchDataUpdated(familyID uuid.UUID, at time.Time) error
}

// AccountRepositoryInterface defines the contract for account repository
// operations. Writes advance the owning family's data mutation marker in the
// same transaction, so derived caches invalidate at commit, never later.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	Update(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	VisibleByFamilyID(familyID uuid.UUID) ([]models.Account, error)
	DistinctVisibleCurrencies(familyID uuid.UUID) ([]string, error)
}

// ExchangeRateRepositoryInterface defines the contract for exchange rate
// repository operations
type ExchangeRateRepositoryInterface interface {
	Upsert(rate *models.ExchangeRate) error
	MaxUpdatedAt(fromCurrencies []string, toCurrency string) (*int64, error)
	RateForDate(fromCurrency, toCurrency string, date time.Time) (*decimal.Decimal, error)
	RatesForDate(fromCurrencies []string, toCurrency string, date time.Time) (map[string]decimal.Decimal, error)
}

// SyncRepositoryInterface defines the contract for sync job lookups
type SyncRepositoryInterface interface {
	Create(sync *models.Sync) error
	IncompleteForAccount(accountID uuid.UUID) (bool, error)
	IncompleteAccountIDs(familyID uuid.UUID) (map[uuid.UUID]struct{}, error)
}
