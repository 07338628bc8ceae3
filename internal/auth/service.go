package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// refreshTokenData stores server-side state for one refresh token
type refreshTokenData struct {
	UserID    uuid.UUID
	Provider  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

const refreshTokenTTL = 30 * 24 * time.Hour

// AuthService provides password and OAuth2 sign-in plus JWT issuance.
// Signing in only authenticates the user; organization selection happens
// per request through the tenant resolver.
type AuthService struct {
	config          *AuthConfig
	providerClients map[string]*ProviderClient
	refreshTokens   map[string]*refreshTokenData
	tokenMutex      sync.RWMutex
	userRepo        repository.UserRepositoryInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Provider string    `json:"provider"`
	jwt.RegisteredClaims
}

// AuthStartResponse represents the response for the auth start endpoint
type AuthStartResponse struct {
	URL string `json:"url"`
}

// SessionProfile is the identity slice returned alongside tokens
type SessionProfile struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

// TokenResponse represents an issued session
type TokenResponse struct {
	AccessToken  string         `json:"access_token"`
	TokenType    string         `json:"token_type"`
	ExpiresIn    int64          `json:"expires_in"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	Profile      SessionProfile `json:"profile"`
}

// LoginRequest represents a password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	providerClients := make(map[string]*ProviderClient)
	for providerName := range config.Providers {
		providerConfig := config.Providers[providerName]
		providerClients[providerName] = NewProviderClient(providerName, &providerConfig)
	}

	return &AuthService{
		config:          config,
		providerClients: providerClients,
		refreshTokens:   make(map[string]*refreshTokenData),
		userRepo:        userRepo,
	}, nil
}

// LoginWithPassword authenticates a user by email and password. A missing
// account and a wrong password produce the same error.
func (s *AuthService) LoginWithPassword(email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	if user.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user, "password")
}

// GetAuthURL generates the OAuth2 authorization URL for a provider
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	client, exists := s.providerClients[provider]
	if !exists {
		return "", apperrors.ErrOAuthProviderNotFound
	}

	callbackURL := fmt.Sprintf("%s/api/v1/auth/%s/callback", s.config.RedirectURL, provider)
	return client.GetOAuth2Config(callbackURL).AuthCodeURL(state), nil
}

// HandleCallback processes an OAuth2 callback. The provider identity is
// matched to a local account by email; unknown emails get a fresh account
// with no password, usable only through the provider.
func (s *AuthService) HandleCallback(ctx context.Context, provider, code string) (*TokenResponse, error) {
	client, exists := s.providerClients[provider]
	if !exists {
		return nil, apperrors.ErrOAuthProviderNotFound
	}

	callbackURL := fmt.Sprintf("%s/api/v1/auth/%s/callback", s.config.RedirectURL, provider)
	oauth2Config := client.GetOAuth2Config(callbackURL)

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := client.GetUserProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	user, err := s.userRepo.GetByEmail(profile.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		user = &models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     profile.Email,
			FullName:  profile.Name,
			IsActive:  true,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	return s.issueTokens(user, provider)
}

// RefreshToken exchanges a refresh token for a new session. Refresh tokens
// are single use; the old one is revoked on rotation.
func (s *AuthService) RefreshToken(refreshToken string) (*TokenResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	return s.issueTokens(user, tokenData.Provider)
}

// Logout revokes a refresh token. Access tokens stay valid until expiry.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// issueTokens builds an access and refresh token pair for a user
func (s *AuthService) issueTokens(user *models.User, provider string) (*TokenResponse, error) {
	jwtToken, err := s.GenerateJWT(user, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &refreshTokenData{
		UserID:    user.ID,
		Provider:  provider,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &TokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.JWTExpiryMinutes) * 60,
		RefreshToken: refreshToken,
		Profile: SessionProfile{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User, provider string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Email:    user.Email,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.JWTExpiryMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "firmdesk-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidSession
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

// generateRandomString generates a random base64 encoded string
func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
