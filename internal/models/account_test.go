package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	validFamilyID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name: "valid depository account",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Main Checking",
				Classification:  ClassificationAsset,
				AccountableType: AccountableDepository,
				Currency:        "USD",
				Balance:         decimal.NewFromFloat(1000.50),
				Status:          AccountStatusActive,
			},
		},
		{
			name: "valid credit card",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Rewards Card",
				Classification:  ClassificationLiability,
				AccountableType: AccountableCreditCard,
				Currency:        "EUR",
				Balance:         decimal.NewFromFloat(250.00),
				Status:          AccountStatusActive,
			},
		},
		{
			name: "missing family ID",
			account: Account{
				Name:            "Main Checking",
				Classification:  ClassificationAsset,
				AccountableType: AccountableDepository,
				Currency:        "USD",
				Status:          AccountStatusActive,
			},
			wantErr: ErrAccountFamilyRequired,
		},
		{
			name: "missing name",
			account: Account{
				FamilyID:        validFamilyID,
				Classification:  ClassificationAsset,
				AccountableType: AccountableDepository,
				Currency:        "USD",
				Status:          AccountStatusActive,
			},
			wantErr: ErrAccountNameRequired,
		},
		{
			name: "invalid classification",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Main Checking",
				Classification:  "equity",
				AccountableType: AccountableDepository,
				Currency:        "USD",
				Status:          AccountStatusActive,
			},
			wantErr: ErrInvalidClassification,
		},
		{
			name: "invalid accountable type",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Main Checking",
				Classification:  ClassificationAsset,
				AccountableType: "Checking",
				Currency:        "USD",
				Status:          AccountStatusActive,
			},
			wantErr: ErrInvalidAccountableType,
		},
		{
			name: "invalid status",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Main Checking",
				Classification:  ClassificationAsset,
				AccountableType: AccountableDepository,
				Currency:        "USD",
				Status:          "archived",
			},
			wantErr: ErrInvalidAccountStatus,
		},
		{
			name: "invalid currency",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Main Checking",
				Classification:  ClassificationAsset,
				AccountableType: AccountableDepository,
				Currency:        "dollars",
				Status:          AccountStatusActive,
			},
			wantErr: ErrInvalidAccountCurrency,
		},
		{
			name: "loan labeled as asset",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Car Loan",
				Classification:  ClassificationAsset,
				AccountableType: AccountableLoan,
				Currency:        "USD",
				Status:          AccountStatusActive,
			},
			wantErr: ErrClassificationMismatch,
		},
		{
			name: "depository labeled as liability",
			account: Account{
				FamilyID:        validFamilyID,
				Name:            "Main Checking",
				Classification:  ClassificationLiability,
				AccountableType: AccountableDepository,
				Currency:        "USD",
				Status:          AccountStatusActive,
			},
			wantErr: ErrClassificationMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClassificationFor(t *testing.T) {
	for _, subtype := range AssetAccountableTypes() {
		assert.Equal(t, ClassificationAsset, ClassificationFor(subtype), subtype)
	}
	for _, subtype := range LiabilityAccountableTypes() {
		assert.Equal(t, ClassificationLiability, ClassificationFor(subtype), subtype)
	}
	assert.Equal(t, "", ClassificationFor("Unknown"))
}

func TestAccount_ClassificationHelpers(t *testing.T) {
	asset := Account{Classification: ClassificationAsset}
	liability := Account{Classification: ClassificationLiability}

	assert.True(t, asset.IsAsset())
	assert.False(t, asset.IsLiability())
	assert.True(t, liability.IsLiability())
	assert.False(t, liability.IsAsset())
}

func TestAccount_IsActive(t *testing.T) {
	assert.True(t, (&Account{Status: AccountStatusActive}).IsActive())
	assert.False(t, (&Account{Status: AccountStatusDraft}).IsActive())
	assert.False(t, (&Account{Status: AccountStatusDisabled}).IsActive())
}

func TestIsValidAccountableType(t *testing.T) {
	all := append(AssetAccountableTypes(), LiabilityAccountableTypes()...)
	for _, subtype := range all {
		assert.True(t, IsValidAccountableType(subtype), subtype)
	}
	assert.False(t, IsValidAccountableType(""))
	assert.False(t, IsValidAccountableType("Checking"))
}
