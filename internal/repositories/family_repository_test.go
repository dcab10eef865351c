package repositories

import (
	"testing"
	"time"

	"family-finance/internal/database"
	"family-finance/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// FamilyRepositorySuite defines the test suite for FamilyRepository
type FamilyRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo FamilyRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *FamilyRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewFamilyRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *FamilyRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestFamilyRepositorySuite runs the test suite
func TestFamilyRepositorySuite(t *testing.T) {
	suite.Run(t, new(FamilyRepositorySuite))
}

func (s *FamilyRepositorySuite) TestCreate() {
	family := &models.Family{
		Name:     "The Smiths",
		Currency: "USD",
	}

	err := s.repo.Create(family)
	s.NoError(err)
	s.NotEqual(uuid.Nil, family.ID)
	s.NotZero(family.CreatedAt)
	s.NotZero(family.DataUpdatedAt)
}

func (s *FamilyRepositorySuite) TestCreate_InvalidCurrency() {
	family := &models.Family{
		Name:     "The Smiths",
		Currency: "usd",
	}

	err := s.repo.Create(family)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidCurrency)
}

func (s *FamilyRepositorySuite) TestGetByID() {
	family := database.CreateTestFamily(s.T(), s.db, "EUR")

	found, err := s.repo.GetByID(family.ID)
	s.NoError(err)
	s.Equal(family.ID, found.ID)
	s.Equal("EUR", found.Currency)
}

func (s *FamilyRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrFamilyNotFound)
	s.Nil(found)
}

func (s *FamilyRepositorySuite) TestTouchDataUpdated() {
	family := database.CreateTestFamily(s.T(), s.db, "USD")

	later := family.DataUpdatedAt.Add(time.Hour)
	err := s.repo.TouchDataUpdated(family.ID, later)
	s.NoError(err)

	found, err := s.repo.GetByID(family.ID)
	s.NoError(err)
	s.WithinDuration(later, found.DataUpdatedAt, time.Second)
}

func (s *FamilyRepositorySuite) TestTouchDataUpdated_NeverMovesBackwards() {
	family := database.CreateTestFamily(s.T(), s.db, "USD")

	later := family.DataUpdatedAt.Add(time.Hour)
	s.NoError(s.repo.TouchDataUpdated(family.ID, later))

	// An older timestamp leaves the marker in place
	s.NoError(s.repo.TouchDataUpdated(family.ID, later.Add(-30*time.Minute)))

	found, err := s.repo.GetByID(family.ID)
	s.NoError(err)
	s.WithinDuration(later, found.DataUpdatedAt, time.Second)
}

func (s *FamilyRepositorySuite) TestTouchDataUpdated_ChangesCacheKey() {
	family := database.CreateTestFamily(s.T(), s.db, "USD")

	before := family.BuildCacheKey("rows", true)

	s.NoError(s.repo.TouchDataUpdated(family.ID, family.DataUpdatedAt.Add(time.Hour)))

	reloaded, err := s.repo.GetByID(family.ID)
	s.NoError(err)
	s.NotEqual(before, reloaded.BuildCacheKey("rows", true))
}
