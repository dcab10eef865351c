package errors

import (
	"errors"
	"fmt"
)

// The totals pipeline distinguishes three failure classes. DataFetchError is
// fatal and propagates; CacheUnavailableError and SyncStatusError are
// recovered locally with safe defaults. Totals either render correctly or
// fail loudly — only metadata (the sync flag) may silently degrade.

// DataFetchError wraps a failed account, family or exchange-rate read.
type DataFetchError struct {
	Op  string
	Err error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataFetchError) Unwrap() error {
	return e.Err
}

// Code returns the taxonomy code for this error
func (e *DataFetchError) Code() ErrorCode {
	return SystemDatabaseError
}

// NewDataFetchError wraps err as a fatal data fetch failure
func NewDataFetchError(op string, err error) *DataFetchError {
	return &DataFetchError{Op: op, Err: err}
}

// CacheUnavailableError wraps a failed cache read or write. Callers fall back
// to direct computation; the cache is a performance optimization, not a
// correctness dependency.
type CacheUnavailableError struct {
	Key string
	Err error
}

func (e *CacheUnavailableError) Error() string {
	return fmt.Sprintf("cache unavailable for key %q: %v", e.Key, e.Err)
}

func (e *CacheUnavailableError) Unwrap() error {
	return e.Err
}

// Code returns the taxonomy code for this error
func (e *CacheUnavailableError) Code() ErrorCode {
	return CacheUnavailable
}

// NewCacheUnavailableError wraps err as a recoverable cache failure
func NewCacheUnavailableError(key string, err error) *CacheUnavailableError {
	return &CacheUnavailableError{Key: key, Err: err}
}

// SyncStatusError wraps a failed sync-status lookup for an account. Callers
// default the syncing flag to false.
type SyncStatusError struct {
	Err error
}

func (e *SyncStatusError) Error() string {
	return fmt.Sprintf("sync status lookup failed: %v", e.Err)
}

func (e *SyncStatusError) Unwrap() error {
	return e.Err
}

// Code returns the taxonomy code for this error
func (e *SyncStatusError) Code() ErrorCode {
	return SyncStatusUnavailable
}

// NewSyncStatusError wraps err as a recoverable sync status failure
func NewSyncStatusError(err error) *SyncStatusError {
	return &SyncStatusError{Err: err}
}

// IsDataFetch reports whether err is (or wraps) a fatal data fetch failure
func IsDataFetch(err error) bool {
	var target *DataFetchError
	return errors.As(err, &target)
}

// IsCacheUnavailable reports whether err is (or wraps) a cache failure
func IsCacheUnavailable(err error) bool {
	var target *CacheUnavailableError
	return errors.As(err, &target)
}

// IsSyncStatus reports whether err is (or wraps) a sync status failure
func IsSyncStatus(err error) bool {
	var target *SyncStatusError
	return errors.As(err, &target)
}
