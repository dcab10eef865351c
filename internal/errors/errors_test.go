package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataFetchError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDataFetchError("list visible accounts", cause)

	assert.Equal(t, "list visible accounts: connection reset", err.Error())
	assert.Equal(t, SystemDatabaseError, err.Code())
	assert.ErrorIs(t, err, cause)
}

func TestCacheUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewCacheUnavailableError("family:abc:rows", cause)

	assert.Contains(t, err.Error(), `"family:abc:rows"`)
	assert.Equal(t, CacheUnavailable, err.Code())
	assert.ErrorIs(t, err, cause)
}

func TestSyncStatusError(t *testing.T) {
	cause := errors.New("timeout")
	err := NewSyncStatusError(cause)

	assert.Contains(t, err.Error(), "sync status lookup failed")
	assert.Equal(t, SyncStatusUnavailable, err.Code())
	assert.ErrorIs(t, err, cause)
}

func TestErrorClassPredicates(t *testing.T) {
	fetch := NewDataFetchError("load family", errors.New("boom"))
	cacheErr := NewCacheUnavailableError("key", errors.New("boom"))
	syncErr := NewSyncStatusError(errors.New("boom"))

	assert.True(t, IsDataFetch(fetch))
	assert.False(t, IsDataFetch(cacheErr))
	assert.False(t, IsDataFetch(syncErr))

	assert.True(t, IsCacheUnavailable(cacheErr))
	assert.False(t, IsCacheUnavailable(fetch))

	assert.True(t, IsSyncStatus(syncErr))
	assert.False(t, IsSyncStatus(fetch))

	// Predicates see through additional wrapping
	wrapped := fmt.Errorf("account totals: %w", fetch)
	assert.True(t, IsDataFetch(wrapped))

	assert.False(t, IsDataFetch(nil))
	assert.False(t, IsDataFetch(errors.New("plain")))
}

func TestGetErrorMessage(t *testing.T) {
	assert.Equal(t, "Family not found", GetErrorMessage(FamilyNotFound))
	assert.Equal(t, "Cache store is unavailable", GetErrorMessage(CacheUnavailable))

	// Unknown codes fall back to the internal error message
	assert.Equal(t, GetErrorMessage(SystemInternalError), GetErrorMessage(ErrorCode("NOPE_999")))
}

func TestIsRecoverable(t *testing.T) {
	// Only cache and sync status failures degrade to safe defaults
	assert.True(t, IsRecoverable(CacheUnavailable))
	assert.True(t, IsRecoverable(CacheEncoding))
	assert.True(t, IsRecoverable(SyncStatusUnavailable))

	assert.False(t, IsRecoverable(FamilyNotFound))
	assert.False(t, IsRecoverable(AccountQueryFailed))
	assert.False(t, IsRecoverable(RateQueryFailed))
	assert.False(t, IsRecoverable(SystemDatabaseError))
}
