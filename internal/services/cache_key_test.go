package services

import (
	"fmt"
	"testing"
	"time"

	"family-finance/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testFamily() *models.Family {
	return &models.Family{
		ID:            uuid.New(),
		Name:          "The Smiths",
		Currency:      "USD",
		DataUpdatedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildAccountRowsCacheKey_Stable(t *testing.T) {
	family := testFamily()
	version := int64(1750000000)

	key1 := buildAccountRowsCacheKey(family, &version)
	key2 := buildAccountRowsCacheKey(family, &version)

	// Same inputs, same key
	assert.Equal(t, key1, key2)
	assert.Equal(t, fmt.Sprintf("family:%s:%s_%d:%d",
		family.ID, accountRowsCacheNamespace, version, family.DataUpdatedAt.Unix()), key1)
}

func TestBuildAccountRowsCacheKey_SensitiveToRateVersion(t *testing.T) {
	family := testFamily()
	v1 := int64(1750000000)
	v2 := int64(1750000001)

	assert.NotEqual(t,
		buildAccountRowsCacheKey(family, &v1),
		buildAccountRowsCacheKey(family, &v2))
}

func TestBuildAccountRowsCacheKey_SensitiveToDataMarker(t *testing.T) {
	family := testFamily()
	version := int64(1750000000)

	before := buildAccountRowsCacheKey(family, &version)
	family.TouchDataUpdated(family.DataUpdatedAt.Add(time.Second))

	assert.NotEqual(t, before, buildAccountRowsCacheKey(family, &version))
}

func TestBuildAccountRowsCacheKey_SensitiveToFamily(t *testing.T) {
	a := testFamily()
	b := testFamily()
	version := int64(1750000000)

	assert.NotEqual(t,
		buildAccountRowsCacheKey(a, &version),
		buildAccountRowsCacheKey(b, &version))
}

func TestBuildAccountRowsCacheKey_NilVersionOmitted(t *testing.T) {
	family := testFamily()

	key := buildAccountRowsCacheKey(family, nil)

	assert.Equal(t, fmt.Sprintf("family:%s:%s:%d",
		family.ID, accountRowsCacheNamespace, family.DataUpdatedAt.Unix()), key)

	// The no-version key differs from any versioned key
	version := int64(0)
	assert.NotEqual(t, key, buildAccountRowsCacheKey(family, &version))
}
