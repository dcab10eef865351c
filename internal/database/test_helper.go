package database

import (
	"fmt"
	"testing"
	"time"

	"family-finance/internal/config"
	"family-finance/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"syncs",
		"exchange_rates",
		"accounts",
		"families",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestFamily(t *testing.T, db *DB, currency string) *models.Family {
	t.Helper()

	family := &models.Family{
		Name:     "Test Family",
		Currency: currency,
	}

	if err := db.Create(family).Error; err != nil {
		t.Fatalf("failed to create test family: %v", err)
	}

	return family
}

func CreateTestAccount(t *testing.T, db *DB, family *models.Family, name, accountableType, currency string, balance decimal.Decimal, visible bool) *models.Account {
	t.Helper()

	account := &models.Account{
		FamilyID:        family.ID,
		Name:            name,
		AccountableType: accountableType,
		Currency:        currency,
		Balance:         balance,
		Visible:         visible,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account %q: %v", name, err)
	}

	return account
}

func CreateTestExchangeRate(t *testing.T, db *DB, from, to string, date time.Time, rate decimal.Decimal) *models.ExchangeRate {
	t.Helper()

	exchangeRate := &models.ExchangeRate{
		FromCurrency: from,
		ToCurrency:   to,
		Date:         date,
		Rate:         rate,
	}

	if err := db.Create(exchangeRate).Error; err != nil {
		t.Fatalf("failed to create test exchange rate %s->%s: %v", from, to, err)
	}

	return exchangeRate
}

func CreateTestSync(t *testing.T, db *DB, syncableType string, syncableID uuid.UUID, status string) *models.Sync {
	t.Helper()

	sync := &models.Sync{
		SyncableType: syncableType,
		SyncableID:   syncableID,
		Status:       status,
	}

	if err := db.Create(sync).Error; err != nil {
		t.Fatalf("failed to create test sync: %v", err)
	}

	return sync
}
