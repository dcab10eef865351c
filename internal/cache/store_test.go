package cache

import (
	"context"
	"testing"
	"time"

	"family-finance/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, Store) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewStore(NewRedisCacheWithClient(client), time.Hour)
}

func TestStore_SetAndGet(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	rows := []models.AccountRow{
		{
			Account: models.Account{
				ID:              uuid.New(),
				FamilyID:        uuid.New(),
				Name:            "Main Checking",
				Classification:  models.ClassificationAsset,
				AccountableType: models.AccountableDepository,
				Currency:        "EUR",
				Balance:         decimal.RequireFromString("50.0000"),
			},
			ConvertedBalance: decimal.NewNullDecimal(decimal.RequireFromString("55.000000")),
		},
		{
			Account: models.Account{
				ID:              uuid.New(),
				FamilyID:        uuid.New(),
				Name:            "Crypto Wallet",
				Classification:  models.ClassificationAsset,
				AccountableType: models.AccountableCrypto,
				Currency:        "BTC",
				Balance:         decimal.RequireFromString("0.5"),
			},
			MissingExchangeRate: true,
		},
	}

	require.NoError(t, store.Set(ctx, "family:test:rows", rows))

	var cached []models.AccountRow
	found, err := store.Get(ctx, "family:test:rows", &cached)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, cached, 2)

	// Decimal values come back exactly, not as floats
	assert.True(t, cached[0].ConvertedBalance.Valid)
	assert.True(t, cached[0].ConvertedBalance.Decimal.Equal(decimal.RequireFromString("55")))
	assert.True(t, cached[0].Account.Balance.Equal(decimal.RequireFromString("50")))

	assert.False(t, cached[1].ConvertedBalance.Valid)
	assert.True(t, cached[1].MissingExchangeRate)
	assert.Equal(t, rows[1].Account.ID, cached[1].Account.ID)
}

func TestStore_GetMissingKey(t *testing.T) {
	_, store := setupTestStore(t)

	var dest []models.AccountRow
	found, err := store.Get(context.Background(), "family:test:absent", &dest)

	// A missing key is a miss, never an error
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_SetAppliesTTL(t *testing.T) {
	mr, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "family:test:rows", []string{"a"}))

	ttl := mr.TTL("family:test:rows")
	assert.Equal(t, time.Hour, ttl)

	// Entry disappears once the TTL elapses
	mr.FastForward(2 * time.Hour)

	var dest []string
	found, err := store.Get(ctx, "family:test:rows", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Delete(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key1", "value1"))
	require.NoError(t, store.Set(ctx, "key2", "value2"))

	require.NoError(t, store.Delete(ctx, "key1", "key2"))

	var dest string
	found, err := store.Get(ctx, "key1", &dest)
	assert.NoError(t, err)
	assert.False(t, found)

	// Deleting nothing is a no-op
	assert.NoError(t, store.Delete(ctx))
}

func TestStore_GetCorruptPayload(t *testing.T) {
	mr, store := setupTestStore(t)

	require.NoError(t, mr.Set("family:test:rows", "{not json"))

	var dest []models.AccountRow
	found, err := store.Get(context.Background(), "family:test:rows", &dest)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestStore_ServerDown(t *testing.T) {
	mr, store := setupTestStore(t)
	mr.Close()

	ctx := context.Background()

	var dest []models.AccountRow
	_, err := store.Get(ctx, "family:test:rows", &dest)
	assert.Error(t, err)

	assert.Error(t, store.Set(ctx, "family:test:rows", []string{"a"}))
}
