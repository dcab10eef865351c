package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ClassificationAsset     = "asset"
	ClassificationLiability = "liability"

	// Accountable types discriminate the account subtype. Each maps to
	// exactly one classification.
	AccountableDepository     = "Depository"
	AccountableInvestment     = "Investment"
	AccountableCrypto         = "Crypto"
	AccountableProperty       = "Property"
	AccountableVehicle        = "Vehicle"
	AccountableOtherAsset     = "OtherAsset"
	AccountableCreditCard     = "CreditCard"
	AccountableLoan           = "Loan"
	AccountableOtherLiability = "OtherLiability"

	AccountStatusActive   = "active"
	AccountStatusDraft    = "draft"
	AccountStatusDisabled = "disabled"
)

var (
	ErrAccountNameRequired    = errors.New("account name is required")
	ErrAccountFamilyRequired  = errors.New("family ID is required")
	ErrInvalidClassification  = errors.New("invalid classification")
	ErrInvalidAccountableType = errors.New("invalid accountable type")
	ErrInvalidAccountStatus   = errors.New("invalid account status")
	ErrClassificationMismatch = errors.New("classification does not match accountable type")
	ErrInvalidAccountCurrency = errors.New("account currency must be a 3-letter ISO 4217 code")
)

// Account is a financial account owned by a family. This subsystem is a
// read-only consumer: balances are maintained elsewhere and only aggregated
// here.
type Account struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	FamilyID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"family_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Classification  string          `gorm:"type:varchar(20);not null" json:"classification"`
	AccountableType string          `gorm:"type:varchar(30);not null" json:"accountable_type"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Balance         decimal.Decimal `gorm:"type:decimal(19,4);not null;default:0" json:"balance"`
	// No gorm default for Visible: with one, an explicit false would be
	// dropped on insert and the column default would win.
	Visible   bool           `gorm:"not null" json:"visible"`
	Status    string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	Family Family `gorm:"foreignKey:FamilyID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.Currency == "" {
		a.Currency = "USD"
	}

	// Derive the classification when the caller only set the subtype.
	if a.Classification == "" {
		a.Classification = ClassificationFor(a.AccountableType)
	}

	// Set timestamps if not already set (for tests)
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now().UTC()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.FamilyID == uuid.Nil {
		return ErrAccountFamilyRequired
	}

	if a.Name == "" {
		return ErrAccountNameRequired
	}

	if !IsValidClassification(a.Classification) {
		return ErrInvalidClassification
	}

	if !IsValidAccountableType(a.AccountableType) {
		return ErrInvalidAccountableType
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if !IsValidCurrencyCode(a.Currency) {
		return ErrInvalidAccountCurrency
	}

	// Business rule: the classification must agree with the subtype, so a
	// liability can never land in the asset bucket by mislabeling.
	if a.Classification != ClassificationFor(a.AccountableType) {
		return ErrClassificationMismatch
	}

	return nil
}

// IsAsset returns true if the account classifies as an asset
func (a *Account) IsAsset() bool {
	return a.Classification == ClassificationAsset
}

// IsLiability returns true if the account classifies as a liability
func (a *Account) IsLiability() bool {
	return a.Classification == ClassificationLiability
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// IsValidClassification checks if the classification is valid
func IsValidClassification(classification string) bool {
	switch classification {
	case ClassificationAsset, ClassificationLiability:
		return true
	default:
		return false
	}
}

// IsValidAccountableType checks if the accountable type is valid
func IsValidAccountableType(accountableType string) bool {
	switch accountableType {
	case AccountableDepository, AccountableInvestment, AccountableCrypto,
		AccountableProperty, AccountableVehicle, AccountableOtherAsset,
		AccountableCreditCard, AccountableLoan, AccountableOtherLiability:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusDraft, AccountStatusDisabled:
		return true
	default:
		return false
	}
}

// ClassificationFor returns the classification for an accountable type
func ClassificationFor(accountableType string) string {
	switch accountableType {
	case AccountableCreditCard, AccountableLoan, AccountableOtherLiability:
		return ClassificationLiability
	case AccountableDepository, AccountableInvestment, AccountableCrypto,
		AccountableProperty, AccountableVehicle, AccountableOtherAsset:
		return ClassificationAsset
	default:
		return ""
	}
}

// AssetAccountableTypes returns all asset subtypes
func AssetAccountableTypes() []string {
	return []string{
		AccountableDepository,
		AccountableInvestment,
		AccountableCrypto,
		AccountableProperty,
		AccountableVehicle,
		AccountableOtherAsset,
	}
}

// LiabilityAccountableTypes returns all liability subtypes
func LiabilityAccountableTypes() []string {
	return []string{
		AccountableCreditCard,
		AccountableLoan,
		AccountableOtherLiability,
	}
}
