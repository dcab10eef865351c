package repositories

import (
	"testing"

	"family-finance/internal/database"
	"family-finance/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SyncRepositorySuite defines the test suite for SyncRepository
type SyncRepositorySuite struct {
	suite.Suite
	db          *database.DB
	repo        SyncRepositoryInterface
	testFamily  *models.Family
	testAccount *models.Account
}

// SetupTest runs before each test in the suite
func (s *SyncRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSyncRepository(s.db.DB)
	s.testFamily = database.CreateTestFamily(s.T(), s.db, "USD")
	s.testAccount = database.CreateTestAccount(s.T(), s.db, s.testFamily, "Main Checking",
		models.AccountableDepository, "USD", decimal.NewFromFloat(1000), true)
}

// TearDownTest runs after each test in the suite
func (s *SyncRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestSyncRepositorySuite runs the test suite
func TestSyncRepositorySuite(t *testing.T) {
	suite.Run(t, new(SyncRepositorySuite))
}

func (s *SyncRepositorySuite) TestIncompleteForAccount_NoSyncs() {
	syncing, err := s.repo.IncompleteForAccount(s.testAccount.ID)
	s.NoError(err)
	s.False(syncing)
}

func (s *SyncRepositorySuite) TestIncompleteForAccount_PendingAccountSync() {
	database.CreateTestSync(s.T(), s.db, models.SyncableAccount, s.testAccount.ID,
		models.SyncStatusPending)

	syncing, err := s.repo.IncompleteForAccount(s.testAccount.ID)
	s.NoError(err)
	s.True(syncing)
}

func (s *SyncRepositorySuite) TestIncompleteForAccount_CompletedSyncIgnored() {
	database.CreateTestSync(s.T(), s.db, models.SyncableAccount, s.testAccount.ID,
		models.SyncStatusCompleted)
	database.CreateTestSync(s.T(), s.db, models.SyncableAccount, s.testAccount.ID,
		models.SyncStatusFailed)

	syncing, err := s.repo.IncompleteForAccount(s.testAccount.ID)
	s.NoError(err)
	s.False(syncing)
}

func (s *SyncRepositorySuite) TestIncompleteForAccount_FamilySyncCovers() {
	database.CreateTestSync(s.T(), s.db, models.SyncableFamily, s.testFamily.ID,
		models.SyncStatusSyncing)

	syncing, err := s.repo.IncompleteForAccount(s.testAccount.ID)
	s.NoError(err)
	s.True(syncing)
}

func (s *SyncRepositorySuite) TestIncompleteAccountIDs_AccountLevel() {
	other := database.CreateTestAccount(s.T(), s.db, s.testFamily, "Savings",
		models.AccountableDepository, "USD", decimal.NewFromFloat(500), true)
	database.CreateTestSync(s.T(), s.db, models.SyncableAccount, s.testAccount.ID,
		models.SyncStatusSyncing)
	database.CreateTestSync(s.T(), s.db, models.SyncableAccount, other.ID,
		models.SyncStatusCompleted)

	ids, err := s.repo.IncompleteAccountIDs(s.testFamily.ID)
	s.NoError(err)
	s.Len(ids, 1)
	s.Contains(ids, s.testAccount.ID)
	s.NotContains(ids, other.ID)
}

func (s *SyncRepositorySuite) TestIncompleteAccountIDs_FamilySyncMarksAll() {
	other := database.CreateTestAccount(s.T(), s.db, s.testFamily, "Savings",
		models.AccountableDepository, "USD", decimal.NewFromFloat(500), true)
	database.CreateTestSync(s.T(), s.db, models.SyncableFamily, s.testFamily.ID,
		models.SyncStatusPending)

	ids, err := s.repo.IncompleteAccountIDs(s.testFamily.ID)
	s.NoError(err)
	s.Len(ids, 2)
	s.Contains(ids, s.testAccount.ID)
	s.Contains(ids, other.ID)
}

func (s *SyncRepositorySuite) TestIncompleteAccountIDs_OtherFamilyIsolated() {
	otherFamily := database.CreateTestFamily(s.T(), s.db, "EUR")
	otherAccount := database.CreateTestAccount(s.T(), s.db, otherFamily, "Euro Checking",
		models.AccountableDepository, "EUR", decimal.NewFromFloat(500), true)
	database.CreateTestSync(s.T(), s.db, models.SyncableAccount, otherAccount.ID,
		models.SyncStatusSyncing)

	ids, err := s.repo.IncompleteAccountIDs(s.testFamily.ID)
	s.NoError(err)
	s.Empty(ids)
}

func (s *SyncRepositorySuite) TestCreate() {
	sync := &models.Sync{
		SyncableType: models.SyncableAccount,
		SyncableID:   s.testAccount.ID,
	}

	err := s.repo.Create(sync)
	s.NoError(err)
	s.Equal(models.SyncStatusPending, sync.Status)
	s.NotZero(sync.CreatedAt)
}
