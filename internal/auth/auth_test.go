package auth_test

import (
	"testing"

	"firmdesk-backend/internal/auth"
	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	config := &auth.AuthConfig{
		JWTSecret:        "test-secret-key",
		JWTExpiryMinutes: 60,
		RedirectURL:      "http://localhost:3000",
	}

	service, err := auth.NewAuthService(config, suite.mockUserRepo)
	assert.NoError(suite.T(), err)
	suite.authService = service
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) activeUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(suite.T(), err)

	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "dhanraj.persaud@demeraratax.gy",
		FullName:     "Dhanraj Persaud",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

// TestNewAuthServiceRequiresSecret tests that a missing JWT secret fails startup
func (suite *AuthServiceTestSuite) TestNewAuthServiceRequiresSecret() {
	config := &auth.AuthConfig{JWTExpiryMinutes: 60}

	service, err := auth.NewAuthService(config, suite.mockUserRepo)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), service)
	assert.Contains(suite.T(), err.Error(), "JWT secret")
}

// TestLoginWithPassword tests a successful password login
func (suite *AuthServiceTestSuite) TestLoginWithPassword() {
	user := suite.activeUser("changeme123")

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.LoginWithPassword(user.Email, "changeme123")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.Equal(suite.T(), "Bearer", response.TokenType)
	assert.Equal(suite.T(), user.Email, response.Profile.Email)
}

// TestLoginWithWrongPassword tests that a wrong password is rejected
func (suite *AuthServiceTestSuite) TestLoginWithWrongPassword() {
	user := suite.activeUser("changeme123")

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.LoginWithPassword(user.Email, "wrong-password")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), response)
}

// TestLoginUnknownEmail tests that an unknown account produces the same
// error as a wrong password
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@demeraratax.gy").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.authService.LoginWithPassword("nobody@demeraratax.gy", "changeme123")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Nil(suite.T(), response)
}

// TestLoginInactiveUser tests that a deactivated account cannot sign in
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	user := suite.activeUser("changeme123")
	user.IsActive = false

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	response, err := suite.authService.LoginWithPassword(user.Email, "changeme123")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserInactive)
	assert.Nil(suite.T(), response)
}

// TestJWTRoundtrip tests that an issued token validates back to its claims
func (suite *AuthServiceTestSuite) TestJWTRoundtrip() {
	user := suite.activeUser("changeme123")

	token, err := suite.authService.GenerateJWT(user, "password")
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), claims)
	assert.Equal(suite.T(), user.ID, claims.UserID)
	assert.Equal(suite.T(), user.Email, claims.Email)
	assert.Equal(suite.T(), "password", claims.Provider)
}

// TestValidateJWTGarbage tests that a malformed token is rejected
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	claims, err := suite.authService.ValidateJWT("not-a-token")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestValidateJWTWrongSecret tests that tokens signed elsewhere are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	otherConfig := &auth.AuthConfig{
		JWTSecret:        "another-secret",
		JWTExpiryMinutes: 60,
	}
	other, err := auth.NewAuthService(otherConfig, suite.mockUserRepo)
	assert.NoError(suite.T(), err)

	user := suite.activeUser("changeme123")
	token, err := other.GenerateJWT(user, "password")
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), claims)
}

// TestRefreshTokenRotation tests that refresh tokens are single use
func (suite *AuthServiceTestSuite) TestRefreshTokenRotation() {
	user := suite.activeUser("changeme123")

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	session, err := suite.authService.LoginWithPassword(user.Email, "changeme123")
	assert.NoError(suite.T(), err)

	suite.mockUserRepo.EXPECT().
		GetByID(user.ID).
		Return(user, nil).
		Times(1)

	refreshed, err := suite.authService.RefreshToken(session.RefreshToken)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), refreshed)
	assert.NotEqual(suite.T(), session.RefreshToken, refreshed.RefreshToken)

	// The old token was revoked on rotation
	replayed, err := suite.authService.RefreshToken(session.RefreshToken)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
	assert.Nil(suite.T(), replayed)
}

// TestRefreshTokenUnknown tests exchanging a token that was never issued
func (suite *AuthServiceTestSuite) TestRefreshTokenUnknown() {
	response, err := suite.authService.RefreshToken("never-issued")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
	assert.Nil(suite.T(), response)
}

// TestLogoutRevokesRefreshToken tests that logout invalidates the session's
// refresh token
func (suite *AuthServiceTestSuite) TestLogoutRevokesRefreshToken() {
	user := suite.activeUser("changeme123")

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	session, err := suite.authService.LoginWithPassword(user.Email, "changeme123")
	assert.NoError(suite.T(), err)

	suite.authService.Logout(session.RefreshToken)

	response, err := suite.authService.RefreshToken(session.RefreshToken)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
	assert.Nil(suite.T(), response)
}

// TestGetAuthURLUnknownProvider tests starting OAuth with an unconfigured provider
func (suite *AuthServiceTestSuite) TestGetAuthURLUnknownProvider() {
	url, err := suite.authService.GetAuthURL("github", "state123")

	assert.Error(suite.T(), err)
	assert.Empty(suite.T(), url)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
