package handlers

import (
	"errors"
	"net/http"

	"firmdesk-backend/internal/auth"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for user accounts and memberships
type MemberHandler struct {
	service service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// Register handles POST /api/v1/users/register
// @Summary Register a user account
// @Description Create a new user account with email and password
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterUserRequest true "Registration data"
// @Success 201 {object} service.UserResponse "Successfully registered user"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /users/register [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req service.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListMyMemberships handles GET /api/v1/users/me/memberships
// @Summary List the caller's organizations
// @Description List active organizations the authenticated user belongs to, for organization selection
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {array} service.MembershipResponse "Memberships"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/me/memberships [get]
func (h *MemberHandler) ListMyMemberships(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	memberships, err := h.service.ListMyMemberships(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list memberships"})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// ListMembers handles GET /api/v1/members
// @Summary List organization members
// @Description List the acting organization's members with pagination
// @Tags members
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MemberListResponse "Successfully retrieved members"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	page, pageSize := parsePagination(c)
	members, err := h.service.ListMembers(ctx, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /api/v1/members
// @Summary Add a member
// @Description Add an existing user to the acting organization by email; admin only
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.AddMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully added member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 409 {object} map[string]interface{} "User is already a member"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.AddMember(ctx, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}

// UpdateMemberRole handles PUT /api/v1/members/:user_id/role
// @Summary Change a member's role
// @Description Change a member's role in the acting organization; admin only
// @Tags members
// @Accept json
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse "Successfully updated member role"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /members/{user_id}/role [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	member, err := h.service.UpdateMemberRole(ctx, userID, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member role"})
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/members/:user_id
// @Summary Remove a member
// @Description Remove a member from the acting organization; admin only
// @Tags members
// @Accept json
// @Produce json
// @Param user_id path string true "User ID (UUID)"
// @Success 204 {string} string "Successfully removed member"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "Admin role required"
// @Failure 404 {object} map[string]interface{} "Member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /members/{user_id} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	ctx := tenantFromContext(c)
	if ctx == nil {
		return
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID: invalid UUID format"})
		return
	}

	if err := h.service.RemoveMember(ctx, userID); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
