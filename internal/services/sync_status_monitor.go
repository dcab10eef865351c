package services

import (
	apperrors "family-finance/internal/errors"
	"family-finance/internal/models"
	"family-finance/internal/repositories"

	"github.com/google/uuid"
)

// syncStatusMonitor answers sync questions straight from the syncs table.
// Nothing here is cached: a sync can start or finish at any moment, so every
// call reflects the current database state.
type syncStatusMonitor struct {
	syncRepo repositories.SyncRepositoryInterface
}

// NewSyncStatusMonitor creates a database-backed sync status monitor
func NewSyncStatusMonitor(syncRepo repositories.SyncRepositoryInterface) SyncStatusMonitorInterface {
	return &syncStatusMonitor{
		syncRepo: syncRepo,
	}
}

// AccountSyncing reports whether the account or its family has a sync in flight
func (m *syncStatusMonitor) AccountSyncing(account *models.Account) (bool, error) {
	syncing, err := m.syncRepo.IncompleteForAccount(account.ID)
	if err != nil {
		return false, apperrors.NewSyncStatusError(err)
	}
	return syncing, nil
}

// SyncingAccountIDs returns every account id in the family with a sync in
// flight, in one query per call
func (m *syncStatusMonitor) SyncingAccountIDs(familyID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids, err := m.syncRepo.IncompleteAccountIDs(familyID)
	if err != nil {
		return nil, apperrors.NewSyncStatusError(err)
	}
	return ids, nil
}
