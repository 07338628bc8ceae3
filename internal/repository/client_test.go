//go:build integration
// +build integration

package repository

import (
	"strings"
	"testing"

	"firmdesk-backend/internal/database/models"
	"firmdesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ClientRepositoryTestSuite tests the ClientRepository
type ClientRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ClientRepository
	auditRepo     *AuditLogRepository
	factories     *testutils.FactorySet

	org   *models.Organization
	other *models.Organization
	user  *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ClientRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewClientRepository(suite.baseTestSuite.DB)
	suite.auditRepo = NewAuditLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ClientRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds two organizations and an actor
func (suite *ClientRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.other = suite.factories.Organization.Create()
	suite.user = suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.other).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.user).Error)
}

// TearDownTest runs after each test
func (suite *ClientRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ClientRepositoryTestSuite) auditEntry(orgID uuid.UUID, action string, entityID uuid.UUID) *models.AuditLog {
	return suite.factories.AuditEntry.Create(orgID, suite.user.ID, action, "client", entityID)
}

// TestCreateWritesAuditEntry tests that a create commits the client and its
// audit entry together
func (suite *ClientRepositoryTestSuite) TestCreateWritesAuditEntry() {
	client := suite.factories.Client.WithOrganization(suite.org.ID)

	err := suite.repo.Create(client, suite.auditEntry(suite.org.ID, "client:create", client.ID))
	suite.NoError(err)

	entries, total, err := suite.auditRepo.Query(suite.org.ID, AuditLogFilter{EntityType: "client"}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("client:create", entries[0].Action)
	suite.Equal(client.ID, entries[0].EntityID)
	suite.Equal(suite.user.ID, entries[0].UserID)
}

// TestCreateRollsBackOnAuditFailure tests that a failed audit append rolls
// the client insert back
func (suite *ClientRepositoryTestSuite) TestCreateRollsBackOnAuditFailure() {
	client := suite.factories.Client.WithOrganization(suite.org.ID)
	entry := suite.auditEntry(suite.org.ID, strings.Repeat("x", 150), client.ID) // exceeds varchar(100)

	err := suite.repo.Create(client, entry)
	suite.Error(err)

	// The business write must not survive the failed audit append
	_, err = suite.repo.GetByID(suite.org.ID, client.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDScopedToOrganization tests that a client in another
// organization reads as not found
func (suite *ClientRepositoryTestSuite) TestGetByIDScopedToOrganization() {
	client := suite.factories.Client.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(client, suite.auditEntry(suite.org.ID, "client:create", client.ID)))

	found, err := suite.repo.GetByID(suite.org.ID, client.ID)
	suite.NoError(err)
	suite.Equal(client.ID, found.ID)

	// Same ID queried from the other tenant
	_, err = suite.repo.GetByID(suite.other.ID, client.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByIDNotFound tests retrieving a non-existent client
func (suite *ClientRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(suite.org.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListScopedToOrganization tests that List never returns another
// tenant's rows
func (suite *ClientRepositoryTestSuite) TestListScopedToOrganization() {
	mine := suite.factories.Client.WithOrganization(suite.org.ID)
	theirs := suite.factories.Client.WithOrganization(suite.other.ID)
	suite.NoError(suite.repo.Create(mine, suite.auditEntry(suite.org.ID, "client:create", mine.ID)))
	suite.NoError(suite.repo.Create(theirs, suite.auditEntry(suite.other.ID, "client:create", theirs.ID)))

	clients, total, err := suite.repo.List(suite.org.ID, ClientFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(clients, 1)
	suite.Equal(mine.ID, clients[0].ID)
}

// TestListFilters tests status, type and search filters
func (suite *ClientRepositoryTestSuite) TestListFilters() {
	business := suite.factories.Client.WithOrganization(suite.org.ID)
	business.Name = "Kaieteur Hardware"
	business.ClientType = models.ClientTypeBusiness
	archived := suite.factories.Client.WithOrganization(suite.org.ID)
	archived.Status = models.ClientStatusArchived
	suite.NoError(suite.repo.Create(business, suite.auditEntry(suite.org.ID, "client:create", business.ID)))
	suite.NoError(suite.repo.Create(archived, suite.auditEntry(suite.org.ID, "client:create", archived.ID)))

	clients, total, err := suite.repo.List(suite.org.ID, ClientFilter{ClientType: models.ClientTypeBusiness}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(business.ID, clients[0].ID)

	clients, total, err = suite.repo.List(suite.org.ID, ClientFilter{Status: models.ClientStatusArchived}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(archived.ID, clients[0].ID)

	clients, total, err = suite.repo.List(suite.org.ID, ClientFilter{Search: "kaieteur"}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(business.ID, clients[0].ID)
}

// TestUpdateScopedToOrganization tests that updates cannot reach another
// tenant's client
func (suite *ClientRepositoryTestSuite) TestUpdateScopedToOrganization() {
	client := suite.factories.Client.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(client, suite.auditEntry(suite.org.ID, "client:create", client.ID)))

	err := suite.repo.Update(suite.other.ID, client.ID, map[string]interface{}{"name": "Hijacked"}, suite.auditEntry(suite.other.ID, "client:update", client.ID))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	err = suite.repo.Update(suite.org.ID, client.ID, map[string]interface{}{"name": "Renamed"}, suite.auditEntry(suite.org.ID, "client:update", client.ID))
	suite.NoError(err)

	updated, err := suite.repo.GetByID(suite.org.ID, client.ID)
	suite.NoError(err)
	suite.Equal("Renamed", updated.Name)
}

// TestDeleteScopedToOrganization tests org-scoped deletion with audit
func (suite *ClientRepositoryTestSuite) TestDeleteScopedToOrganization() {
	client := suite.factories.Client.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(client, suite.auditEntry(suite.org.ID, "client:create", client.ID)))

	err := suite.repo.Delete(suite.other.ID, client.ID, suite.auditEntry(suite.other.ID, "client:delete", client.ID))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	err = suite.repo.Delete(suite.org.ID, client.ID, suite.auditEntry(suite.org.ID, "client:delete", client.ID))
	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.org.ID, client.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Audit entries outlive the client
	entries, _, err := suite.auditRepo.Query(suite.org.ID, AuditLogFilter{Action: "client:delete"}, 10, 0)
	suite.NoError(err)
	suite.Len(entries, 1)
	suite.Equal(client.ID, entries[0].EntityID)
}

// TestCountDependents tests the dependent row counts used by the deletion
// policy
func (suite *ClientRepositoryTestSuite) TestCountDependents() {
	client := suite.factories.Client.WithOrganization(suite.org.ID)
	suite.NoError(suite.repo.Create(client, suite.auditEntry(suite.org.ID, "client:create", client.ID)))

	counts, err := suite.repo.CountDependents(suite.org.ID, client.ID)
	suite.NoError(err)
	suite.Empty(counts)

	doc := suite.factories.Document.Create(suite.org.ID, client.ID, suite.user.ID)
	invoice := suite.factories.Invoice.Create(suite.org.ID, client.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(doc).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(invoice).Error)

	counts, err = suite.repo.CountDependents(suite.org.ID, client.ID)
	suite.NoError(err)
	suite.Equal(int64(1), counts["documents"])
	suite.Equal(int64(1), counts["invoices"])
	suite.NotContains(counts, "appointments")
}

// Run the test suite
func TestClientRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ClientRepositoryTestSuite))
}
