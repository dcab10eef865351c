package errors

// ErrorCode represents a standardized error code used throughout the module
type ErrorCode string

// Family error codes (FAMILY_*)
const (
	FamilyNotFound        ErrorCode = "FAMILY_001"
	FamilyInvalidCurrency ErrorCode = "FAMILY_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountQueryFailed           ErrorCode = "ACCOUNT_001"
	AccountInvalidClassification ErrorCode = "ACCOUNT_002"
)

// Exchange rate error codes (RATE_*)
const (
	RateQueryFailed ErrorCode = "RATE_001"
	RateMissing     ErrorCode = "RATE_002"
)

// Cache error codes (CACHE_*)
const (
	CacheUnavailable ErrorCode = "CACHE_001"
	CacheEncoding    ErrorCode = "CACHE_002"
)

// Sync status error codes (SYNC_*)
const (
	SyncStatusUnavailable ErrorCode = "SYNC_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	FamilyNotFound:        "Family not found",
	FamilyInvalidCurrency: "Family reporting currency is invalid",

	AccountQueryFailed:           "Failed to load the family's visible accounts",
	AccountInvalidClassification: "Account classification is invalid",

	RateQueryFailed: "Failed to look up exchange rates",
	RateMissing:     "No same-day exchange rate is available",

	CacheUnavailable: "Cache store is unavailable",
	CacheEncoding:    "Failed to encode or decode a cached value",

	SyncStatusUnavailable: "Sync status could not be determined",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemConfigurationError: "The service is misconfigured",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, ok := errorMessages[code]; ok {
		return message
	}
	return errorMessages[SystemInternalError]
}

// IsRecoverable reports whether failures with this code are swallowed with a
// safe default instead of propagated. Only performance-affecting concerns
// (cache, sync status) recover; data fetch failures are fatal.
func IsRecoverable(code ErrorCode) bool {
	switch code {
	case CacheUnavailable, CacheEncoding, SyncStatusUnavailable:
		return true
	default:
		return false
	}
}
