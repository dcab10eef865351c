package repositories

import (
	"fmt"

	"family-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syncRepository implements SyncRepositoryInterface
type syncRepository struct {
	db *gorm.DB
}

// NewSyncRepository creates a new sync repository
func NewSyncRepository(db *gorm.DB) SyncRepositoryInterface {
	return &syncRepository{
		db: db,
	}
}

// Create creates a new sync record
func (r *syncRepository) Create(sync *models.Sync) error {
	if err := r.db.Create(sync).Error; err != nil {
		return fmt.Errorf("failed to create sync: %w", err)
	}
	return nil
}

// IncompleteForAccount reports whether the account has a sync that has not
// finished yet, either on the account itself or on its owning family.
func (r *syncRepository) IncompleteForAccount(accountID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Sync{}).
		Where("syncable_type = ? AND syncable_id = ? AND status IN ?",
			models.SyncableAccount, accountID, models.IncompleteSyncStatuses()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count incomplete syncs for account: %w", err)
	}
	if count > 0 {
		return true, nil
	}

	var account models.Account
	if err := r.db.Select("family_id").First(&account, "id = ?", accountID).Error; err != nil {
		return false, fmt.Errorf("failed to load account for sync lookup: %w", err)
	}

	err = r.db.Model(&models.Sync{}).
		Where("syncable_type = ? AND syncable_id = ? AND status IN ?",
			models.SyncableFamily, account.FamilyID, models.IncompleteSyncStatuses()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count incomplete syncs for family: %w", err)
	}
	return count > 0, nil
}

// IncompleteAccountIDs returns the set of account ids in the family that are
// currently mid-sync. A family-level sync marks every account in the family.
func (r *syncRepository) IncompleteAccountIDs(familyID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	syncing := make(map[uuid.UUID]struct{})

	var familyCount int64
	err := r.db.Model(&models.Sync{}).
		Where("syncable_type = ? AND syncable_id = ? AND status IN ?",
			models.SyncableFamily, familyID, models.IncompleteSyncStatuses()).
		Count(&familyCount).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count incomplete family syncs: %w", err)
	}

	if familyCount > 0 {
		var accountIDs []uuid.UUID
		err = r.db.Model(&models.Account{}).
			Where("family_id = ?", familyID).
			Pluck("id", &accountIDs).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list family account ids: %w", err)
		}
		for _, id := range accountIDs {
			syncing[id] = struct{}{}
		}
		return syncing, nil
	}

	var accountIDs []uuid.UUID
	err = r.db.Model(&models.Sync{}).
		Joins("JOIN accounts ON accounts.id = syncs.syncable_id").
		Where("syncs.syncable_type = ? AND accounts.family_id = ? AND syncs.status IN ?",
			models.SyncableAccount, familyID, models.IncompleteSyncStatuses()).
		Pluck("syncs.syncable_id", &accountIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete account syncs: %w", err)
	}

	for _, id := range accountIDs {
		syncing[id] = struct{}{}
	}
	return syncing, nil
}
