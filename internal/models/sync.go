package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SyncStatusPending   = "pending"
	SyncStatusSyncing   = "syncing"
	SyncStatusCompleted = "completed"
	SyncStatusFailed    = "failed"

	// Syncable types
	SyncableAccount = "Account"
	SyncableFamily  = "Family"
)

// Sync is one background synchronization job for an account or a whole
// family. The totals subsystem only reads these to flag rows as currently
// syncing; scheduling and execution live elsewhere.
type Sync struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SyncableType string    `gorm:"type:varchar(30);not null;index:idx_syncs_syncable" json:"syncable_type"`
	SyncableID   uuid.UUID `gorm:"type:uuid;not null;index:idx_syncs_syncable" json:"syncable_id"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Sync
func (s *Sync) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if s.Status == "" {
		s.Status = SyncStatusPending
	}

	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return nil
}

// Incomplete reports whether the sync is still in flight
func (s *Sync) Incomplete() bool {
	return s.Status == SyncStatusPending || s.Status == SyncStatusSyncing
}

// IncompleteSyncStatuses returns the statuses counted as in flight
func IncompleteSyncStatuses() []string {
	return []string{SyncStatusPending, SyncStatusSyncing}
}

// TableName returns the table name for Sync
func (s *Sync) TableName() string {
	return "syncs"
}
