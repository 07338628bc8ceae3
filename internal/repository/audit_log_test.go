//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AuditLogRepositoryTestSuite tests the AuditLogRepository
type AuditLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AuditLogRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	other *models.Organization
	user  *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *AuditLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAuditLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AuditLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AuditLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.other = suite.factories.Organization.Create()
	suite.user = suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.other).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.user).Error)
}

// TearDownTest runs after each test
func (suite *AuditLogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestEntriesAreImmutable tests that the model hooks refuse update and
// delete of committed entries
func (suite *AuditLogRepositoryTestSuite) TestEntriesAreImmutable() {
	entry := suite.factories.AuditEntry.Create(suite.org.ID, suite.user.ID, "client:create", "client", uuid.New())
	suite.Require().NoError(suite.repo.Create(entry))

	err := suite.baseTestSuite.DB.Model(entry).Update("action", "client:update").Error
	suite.ErrorIs(err, apperrors.ErrAuditLogImmutable)

	err = suite.baseTestSuite.DB.Delete(entry).Error
	suite.ErrorIs(err, apperrors.ErrAuditLogImmutable)

	// The entry is untouched
	found, err := suite.repo.GetByID(suite.org.ID, entry.ID)
	suite.NoError(err)
	suite.Equal("client:create", found.Action)
}

// TestQueryScopedToOrganization tests that one tenant cannot read another
// tenant's trail
func (suite *AuditLogRepositoryTestSuite) TestQueryScopedToOrganization() {
	mine := suite.factories.AuditEntry.Create(suite.org.ID, suite.user.ID, "client:create", "client", uuid.New())
	theirs := suite.factories.AuditEntry.Create(suite.other.ID, suite.user.ID, "client:create", "client", uuid.New())
	suite.Require().NoError(suite.repo.Create(mine))
	suite.Require().NoError(suite.repo.Create(theirs))

	entries, total, err := suite.repo.Query(suite.org.ID, AuditLogFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(mine.ID, entries[0].ID)

	_, err = suite.repo.GetByID(suite.org.ID, theirs.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestQueryFilters tests the supported audit trail filters
func (suite *AuditLogRepositoryTestSuite) TestQueryFilters() {
	clientID := uuid.New()
	actor := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(actor).Error)

	created := suite.factories.AuditEntry.Create(suite.org.ID, suite.user.ID, "client:create", "client", clientID)
	updated := suite.factories.AuditEntry.Create(suite.org.ID, actor.ID, "client:update", "client", clientID)
	invoiced := suite.factories.AuditEntry.Create(suite.org.ID, suite.user.ID, "invoice:create", "invoice", uuid.New())
	for _, e := range []*models.AuditLog{created, updated, invoiced} {
		suite.Require().NoError(suite.repo.Create(e))
	}

	entries, total, err := suite.repo.Query(suite.org.ID, AuditLogFilter{EntityType: "client"}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(entries, 2)

	entries, total, err = suite.repo.Query(suite.org.ID, AuditLogFilter{Action: "client:update"}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(updated.ID, entries[0].ID)

	entries, total, err = suite.repo.Query(suite.org.ID, AuditLogFilter{UserID: &actor.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(updated.ID, entries[0].ID)

	entries, total, err = suite.repo.Query(suite.org.ID, AuditLogFilter{EntityID: &clientID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)

	future := time.Now().Add(time.Hour)
	entries, total, err = suite.repo.Query(suite.org.ID, AuditLogFilter{From: &future}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(entries)
}

// TestQueryOrdersNewestFirst tests result ordering
func (suite *AuditLogRepositoryTestSuite) TestQueryOrdersNewestFirst() {
	first := suite.factories.AuditEntry.Create(suite.org.ID, suite.user.ID, "client:create", "client", uuid.New())
	suite.Require().NoError(suite.repo.Create(first))
	time.Sleep(10 * time.Millisecond)
	second := suite.factories.AuditEntry.Create(suite.org.ID, suite.user.ID, "client:update", "client", uuid.New())
	suite.Require().NoError(suite.repo.Create(second))

	entries, _, err := suite.repo.Query(suite.org.ID, AuditLogFilter{}, 10, 0)
	suite.NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(second.ID, entries[0].ID)
	suite.Equal(first.ID, entries[1].ID)
}

// Run the test suite
func TestAuditLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AuditLogRepositoryTestSuite))
}
