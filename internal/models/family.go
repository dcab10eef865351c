package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFamilyNameRequired = errors.New("family name is required")
	ErrInvalidCurrency    = errors.New("currency must be a 3-letter ISO 4217 code")
)

// Family is the aggregate root: a household owning a set of financial accounts
// and a single reporting currency that all totals are expressed in.
type Family struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Currency string    `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`

	// DataUpdatedAt is the family's last-data-mutation marker. Every mutating
	// collaborator (account writes, rate imports) advances it at or before
	// commit, so cache keys built with invalidateOnDataUpdates roll over as
	// soon as the underlying data changes.
	DataUpdatedAt time.Time `gorm:"not null" json:"data_updated_at"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Accounts []Account `gorm:"foreignKey:FamilyID" json:"-"`
}

// BeforeCreate hook for Family
func (f *Family) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	if f.Currency == "" {
		f.Currency = "USD"
	}

	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}
	if f.DataUpdatedAt.IsZero() {
		f.DataUpdatedAt = now
	}

	return f.Validate()
}

// Validate validates the family fields
func (f *Family) Validate() error {
	if f.Name == "" {
		return ErrFamilyNameRequired
	}

	if !IsValidCurrencyCode(f.Currency) {
		return ErrInvalidCurrency
	}

	return nil
}

// TouchDataUpdated advances the data mutation marker. The marker never moves
// backwards, so a skewed clock cannot resurrect stale cache entries.
func (f *Family) TouchDataUpdated(at time.Time) {
	if at.After(f.DataUpdatedAt) {
		f.DataUpdatedAt = at
	}
}

// BuildCacheKey scopes a cache key by the family's id. When
// invalidateOnDataUpdates is set, the data mutation marker becomes part of the
// key, so advancing the marker invalidates every entry built from it.
func (f *Family) BuildCacheKey(key string, invalidateOnDataUpdates bool) string {
	if invalidateOnDataUpdates {
		return fmt.Sprintf("family:%s:%s:%d", f.ID, key, f.DataUpdatedAt.Unix())
	}
	return fmt.Sprintf("family:%s:%s", f.ID, key)
}

// TableName returns the table name for Family
func (f *Family) TableName() string {
	return "families"
}

// IsValidCurrencyCode checks that the code is 3 uppercase ASCII letters
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}
