package services

import (
	"context"

	"family-finance/internal/models"

	"github.com/google/uuid"
)

// BalanceSheetServiceInterface defines the contract for balance sheet
// aggregation operations
type BalanceSheetServiceInterface interface {
	AccountTotals(ctx context.Context, familyID uuid.UUID) (*AccountTotals, error)
}

// SyncStatusMonitorInterface answers whether accounts are mid-sync. Results
// are fetched live on every call so stale "syncing" flags never stick.
type SyncStatusMonitorInterface interface {
	AccountSyncing(account *models.Account) (bool, error)
	SyncingAccountIDs(familyID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

// MetricsRecorderInterface defines the contract for recording balance sheet metrics
type MetricsRecorderInterface interface {
	RecordCacheEvent(result string)
	RecordAggregationDuration(durationMs float64)
	RecordAccountRows(count int)
}

// DataGeneratorInterface defines the contract for generating realistic demo data
type DataGeneratorInterface interface {
	GenerateFamily(currency string) (*models.Family, error)
	GenerateAccounts(familyID uuid.UUID, count int) ([]*models.Account, error)
	GenerateExchangeRates(fromCurrencies []string, toCurrency string, days int) ([]*models.ExchangeRate, error)
}
