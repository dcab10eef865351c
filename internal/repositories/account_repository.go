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
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account and advances the family's data marker in the
// same transaction
func (r *accountRepository) Create(account *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		if err := touchFamilyTx(tx, account.FamilyID, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to touch family data marker: %w", err)
		}

		return nil
	})
}

// Update updates an account and advances the family's data marker in the
// same transaction
func (r *accountRepository) Update(account *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		if err := touchFamilyTx(tx, account.FamilyID, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to touch family data marker: %w", err)
		}

		return nil
	})
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	if err := r.db.First(account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// VisibleByFamilyID retrieves the family's visible accounts in a stable
// name-then-id order
func (r *accountRepository) VisibleByFamilyID(familyID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("family_id = ? AND visible = ?", familyID, true).
		Order("name ASC, id ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get visible accounts: %w", err)
	}
	return accounts, nil
}

// DistinctVisibleCurrencies returns the distinct currencies used by the
// family's visible accounts
func (r *accountRepository) DistinctVisibleCurrencies(familyID uuid.UUID) ([]string, error) {
	var currencies []string
	if err := r.db.Model(&models.Account{}).
		Where("family_id = ? AND visible = ?", familyID, true).
		Distinct().
		Order("currency ASC").
		Pluck("currency", &currencies).Error; err != nil {
		return nil, fmt.Errorf("failed to get visible account currencies: %w", err)
	}
	return currencies, nil
}
