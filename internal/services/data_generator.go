package services

import (
	"fmt"
	"math/rand"
	"time"

	"family-finance/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type dataGenerator struct {
	rng *rand.Rand
}

const (
	maxAssetBalanceCents     = 50_000_000
	maxLiabilityBalanceCents = 10_000_000
	hiddenAccountOdds        = 5 // roughly one in five generated accounts is hidden
)

var generatorCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF"}

// NewDataGenerator creates a generator for realistic demo families, accounts
// and exchange rates
func NewDataGenerator() DataGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &dataGenerator{
		rng: rand.New(source),
	}
}

// GenerateFamily creates a family with the given reporting currency
func (g *dataGenerator) GenerateFamily(currency string) (*models.Family, error) {
	family := &models.Family{
		Name:     fmt.Sprintf("The %s Family", gofakeit.LastName()),
		Currency: currency,
	}
	if err := family.Validate(); err != nil {
		return nil, fmt.Errorf("generated family failed validation: %w", err)
	}
	return family, nil
}

// GenerateAccounts creates a mix of visible and hidden accounts across asset
// and liability subtypes, in a spread of currencies
func (g *dataGenerator) GenerateAccounts(familyID uuid.UUID, count int) ([]*models.Account, error) {
	subtypes := append(models.AssetAccountableTypes(), models.LiabilityAccountableTypes()...)

	accounts := make([]*models.Account, 0, count)
	for i := 0; i < count; i++ {
		subtype := subtypes[g.rng.Intn(len(subtypes))]
		classification := models.ClassificationFor(subtype)

		maxCents := maxAssetBalanceCents
		if classification == models.ClassificationLiability {
			maxCents = maxLiabilityBalanceCents
		}

		account := &models.Account{
			FamilyID:        familyID,
			Name:            g.accountName(subtype),
			Classification:  classification,
			AccountableType: subtype,
			Currency:        generatorCurrencies[g.rng.Intn(len(generatorCurrencies))],
			Balance:         decimal.New(int64(g.rng.Intn(maxCents)), -2),
			Visible:         g.rng.Intn(hiddenAccountOdds) != 0,
			Status:          models.AccountStatusActive,
		}
		if err := account.Validate(); err != nil {
			return nil, fmt.Errorf("generated account failed validation: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// GenerateExchangeRates creates one rate per currency pair per day, counting
// back from today
func (g *dataGenerator) GenerateExchangeRates(fromCurrencies []string, toCurrency string, days int) ([]*models.ExchangeRate, error) {
	today := models.DateOnly(time.Now().UTC())

	rates := make([]*models.ExchangeRate, 0, len(fromCurrencies)*days)
	for _, from := range fromCurrencies {
		if from == toCurrency {
			continue
		}
		base := decimal.NewFromFloat(gofakeit.Float64Range(0.01, 5))
		for day := 0; day < days; day++ {
			drift := decimal.NewFromFloat(gofakeit.Float64Range(-0.02, 0.02))
			rate := &models.ExchangeRate{
				FromCurrency: from,
				ToCurrency:   toCurrency,
				Date:         today.AddDate(0, 0, -day),
				Rate:         base.Add(base.Mul(drift)).Round(12),
			}
			if err := rate.Validate(); err != nil {
				return nil, fmt.Errorf("generated exchange rate failed validation: %w", err)
			}
			rates = append(rates, rate)
		}
	}
	return rates, nil
}

func (g *dataGenerator) accountName(subtype string) string {
	switch subtype {
	case models.AccountableDepository:
		return fmt.Sprintf("%s Checking", gofakeit.Company())
	case models.AccountableInvestment:
		return fmt.Sprintf("%s Brokerage", gofakeit.Company())
	case models.AccountableCrypto:
		return fmt.Sprintf("%s Wallet", gofakeit.CurrencyShort())
	case models.AccountableProperty:
		return fmt.Sprintf("%s Property", gofakeit.City())
	case models.AccountableVehicle:
		return fmt.Sprintf("%s %s", gofakeit.CarMaker(), gofakeit.CarModel())
	case models.AccountableCreditCard:
		return fmt.Sprintf("%s Card", gofakeit.Company())
	case models.AccountableLoan:
		return fmt.Sprintf("%s Loan", gofakeit.Company())
	default:
		return gofakeit.ProductName()
	}
}
