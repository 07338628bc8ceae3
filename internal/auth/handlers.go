package auth

import (
	"net/http"

	apperrors "firmdesk-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in with email and password
// @Description Authenticate with email and password and receive a token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or deactivated account"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	response, err := h.service.LoginWithPassword(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Start handles GET /api/v1/auth/:provider/start
// @Summary Start OAuth authentication
// @Description Initiate the OAuth flow with the configured provider
// @Tags authentication
// @Produce json
// @Param provider path string true "Configured OAuth provider name"
// @Success 302 {string} string "Redirect to the provider's authorization URL"
// @Failure 404 {object} map[string]interface{} "Unknown provider"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/v1/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown provider"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL"})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/v1/auth/:provider/callback
// @Summary Handle OAuth callback
// @Description Exchange the authorization code for a local session
// @Tags authentication
// @Produce json
// @Param provider path string true "Configured OAuth provider name"
// @Param code query string true "OAuth authorization code"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error from the provider"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Missing code or provider error"
// @Failure 401 {object} map[string]interface{} "Deactivated account"
// @Failure 404 {object} map[string]interface{} "Unknown provider"
// @Router /api/v1/auth/{provider}/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")

	if errorParam := c.Query("error"); errorParam != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider returned an error", "details": errorParam})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}

	response, err := h.service.HandleCallback(c.Request.Context(), provider, code)
	if err != nil {
		switch {
		case apperrors.IsConfiguration(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown provider"})
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh a session
// @Description Exchange a refresh token for a new token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	response, err := h.service.RefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Validate handles GET /api/v1/auth/validate
// @Summary Validate the current token
// @Description Return the claims of the presented access token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/v1/auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Revoke the presented refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)

	h.service.Logout(req.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
