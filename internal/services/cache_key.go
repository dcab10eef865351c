package services

import (
	"strconv"

	"family-finance/internal/models"
)

const accountRowsCacheNamespace = "balance_sheet_account_rows"

// buildAccountRowsCacheKey derives the cache key for a family's enriched
// account rows. The key embeds the freshest exchange rate version for the
// currencies involved, so refreshed rates produce a new key, and delegates
// to the family for scoping by its data mutation marker. ratesVersion is nil
// when the family has no convertible currencies and no rates exist for them;
// the version segment is simply omitted in that case.
func buildAccountRowsCacheKey(family *models.Family, ratesVersion *int64) string {
	key := accountRowsCacheNamespace
	if ratesVersion != nil {
		key += "_" + strconv.FormatInt(*ratesVersion, 10)
	}
	return family.BuildCacheKey(key, true)
}
