package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"family-finance/internal/cache"
	apperrors "family-finance/internal/errors"
	"family-finance/internal/repositories"

	"github.com/google/uuid"
)

var ErrFamilyNotFound = errors.New("family not found")

// balanceSheetService implements BalanceSheetServiceInterface interface
type balanceSheetService struct {
	familyRepo  repositories.FamilyRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	rateRepo    repositories.ExchangeRateRepositoryInterface
	monitor     SyncStatusMonitorInterface
	store       cache.Store
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewBalanceSheetService creates a balance sheet service backed by the given
// repositories, sync monitor and cache store
func NewBalanceSheetService(
	familyRepo repositories.FamilyRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	rateRepo repositories.ExchangeRateRepositoryInterface,
	monitor SyncStatusMonitorInterface,
	store cache.Store,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BalanceSheetServiceInterface {
	return &balanceSheetService{
		familyRepo:  familyRepo,
		accountRepo: accountRepo,
		rateRepo:    rateRepo,
		monitor:     monitor,
		store:       store,
		metrics:     metrics,
		logger:      logger,
	}
}

// AccountTotals loads the family and returns a facade over its balance sheet
// buckets. Nothing is computed until the first bucket access.
func (s *balanceSheetService) AccountTotals(ctx context.Context, familyID uuid.UUID) (*AccountTotals, error) {
	family, err := s.familyRepo.GetByID(familyID)
	if err != nil {
		if errors.Is(err, repositories.ErrFamilyNotFound) {
			return nil, ErrFamilyNotFound
		}
		return nil, apperrors.NewDataFetchError(fmt.Sprintf("load family %s", familyID), err)
	}

	query := newAccountRowsQuery(family, s.accountRepo, s.rateRepo, s.store, s.metrics, s.logger)
	return newAccountTotals(family, query, s.monitor, s.logger), nil
}
