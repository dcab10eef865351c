package repositories

import (
	"errors"
	"fmt"
	"time"

	"family-finance/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFamilyNotFound = errors.New("family not found")
)

// familyRepository implements FamilyRepositoryInterface
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *gorm.DB) FamilyRepositoryInterface {
	return &familyRepository{
		db: db,
	}
}

// Create creates a new family
func (r *familyRepository) Create(family *models.Family) error {
	if err := r.db.Create(family).Error; err != nil {
		return fmt.Errorf("failed to create family: %w", err)
	}
	return nil
}

// GetByID retrieves a family by ID
func (r *familyRepository) GetByID(id uuid.UUID) (*models.Family, error) {
	family := &models.Family{}
	if err := r.db.First(family, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFamilyNotFound
		}
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return family, nil
}

// TouchDataUpdated advances the family's data mutation marker. The update is
// guarded so the marker only ever moves forward.
func (r *familyRepository) TouchDataUpdated(familyID uuid.UUID, at time.Time) error {
	result := r.db.Model(&models.Family{}).
		Where("id = ? AND data_updated_at < ?", familyID, at).
		UpdateColumn("data_updated_at", at)

	if result.Error != nil {
		return fmt.Errorf("failed to touch family data marker: %w", result.Error)
	}
	return nil
}

// touchFamilyTx advances the data marker inside an existing transaction.
// Mutating repositories call this so invalidation lands at commit.
func touchFamilyTx(tx *gorm.DB, familyID uuid.UUID, at time.Time) error {
	return tx.Model(&models.Family{}).
		Where("id = ? AND data_updated_at < ?", familyID, at).
		UpdateColumn("data_updated_at", at).Error
}
