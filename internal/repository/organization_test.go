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

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *OrganizationRepository
	membershipRepo *MembershipRepository
	auditRepo      *AuditLogRepository
	factories      *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.membershipRepo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.auditRepo = NewAuditLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganizationRepositoryTestSuite) seedFounder() *models.User {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestCreateWithOwner tests that org, founding membership and onboarding
// audit entry commit together
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwner() {
	user := suite.seedFounder()
	org := suite.factories.Organization.Create()
	membership := suite.factories.Membership.Create(org.ID, user.ID, models.MembershipRoleAdmin)
	entry := suite.factories.AuditEntry.Create(org.ID, user.ID, "organization:create", "organization", org.ID)

	err := suite.repo.CreateWithOwner(org, membership, entry)
	suite.NoError(err)

	found, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.True(found.IsActive)

	m, err := suite.membershipRepo.GetByOrgAndUser(org.ID, user.ID)
	suite.NoError(err)
	suite.Equal(models.MembershipRoleAdmin, m.Role)

	entries, total, err := suite.auditRepo.Query(org.ID, AuditLogFilter{}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("organization:create", entries[0].Action)
}

// TestCreateWithOwnerRollsBackOnAuditFailure tests onboarding atomicity
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwnerRollsBackOnAuditFailure() {
	user := suite.seedFounder()
	org := suite.factories.Organization.Create()
	membership := suite.factories.Membership.Create(org.ID, user.ID, models.MembershipRoleAdmin)
	entry := suite.factories.AuditEntry.Create(org.ID, user.ID, strings.Repeat("x", 150), "organization", org.ID)

	err := suite.repo.CreateWithOwner(org, membership, entry)
	suite.Error(err)

	_, err = suite.repo.GetByID(org.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.membershipRepo.GetByOrgAndUser(org.ID, user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByName tests retrieving an organization by its unique name
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	user := suite.seedFounder()
	org := suite.factories.Organization.WithName("demerara-tax-advisors")
	membership := suite.factories.Membership.Create(org.ID, user.ID, models.MembershipRoleAdmin)
	entry := suite.factories.AuditEntry.Create(org.ID, user.ID, "organization:create", "organization", org.ID)
	suite.Require().NoError(suite.repo.CreateWithOwner(org, membership, entry))

	found, err := suite.repo.GetByName("demerara-tax-advisors")
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)

	_, err = suite.repo.GetByName("no-such-firm")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateDeactivates tests the deactivation path; organizations are
// never deleted
func (suite *OrganizationRepositoryTestSuite) TestUpdateDeactivates() {
	user := suite.seedFounder()
	org := suite.factories.Organization.Create()
	membership := suite.factories.Membership.Create(org.ID, user.ID, models.MembershipRoleAdmin)
	entry := suite.factories.AuditEntry.Create(org.ID, user.ID, "organization:create", "organization", org.ID)
	suite.Require().NoError(suite.repo.CreateWithOwner(org, membership, entry))

	deactivate := suite.factories.AuditEntry.Create(org.ID, user.ID, "organization:deactivate", "organization", org.ID)
	err := suite.repo.Update(org.ID, map[string]interface{}{"is_active": false}, deactivate)
	suite.NoError(err)

	found, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.False(found.IsActive)
}

// TestUpdateNotFound tests updating a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestUpdateNotFound() {
	entry := suite.factories.AuditEntry.Create(uuid.New(), uuid.New(), "organization:update", "organization", uuid.New())
	err := suite.repo.Update(uuid.New(), map[string]interface{}{"display_name": "Ghost"}, entry)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
