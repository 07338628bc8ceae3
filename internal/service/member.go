package service

import (
	"errors"
	"fmt"
	"time"

	"firmdesk-backend/internal/database/models"
	apperrors "firmdesk-backend/internal/errors"
	"firmdesk-backend/internal/repository"
	"firmdesk-backend/internal/tenant"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MemberService handles user accounts and organization memberships
type MemberService struct {
	userRepo       repository.UserRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(userRepo repository.UserRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// RegisterUserRequest represents the request to register a user account
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AddMemberRequest represents the request to add an existing user to the
// caller's organization
type AddMemberRequest struct {
	Email string                `json:"email" validate:"required,email"`
	Role  models.MembershipRole `json:"role" validate:"required"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role models.MembershipRole `json:"role" validate:"required"`
}

// UserResponse represents a user account
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberResponse represents one member of an organization
type MemberResponse struct {
	UserID   uuid.UUID             `json:"user_id"`
	Email    string                `json:"email"`
	FullName string                `json:"full_name"`
	Role     models.MembershipRole `json:"role"`
	JoinedAt time.Time             `json:"joined_at"`
}

// MemberListResponse represents a paginated list of members
type MemberListResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// MembershipResponse represents one organization a user belongs to,
// returned when the user has to pick an organization for the session
type MembershipResponse struct {
	OrganizationID   uuid.UUID             `json:"organization_id"`
	OrganizationName string                `json:"organization_name"`
	Role             models.MembershipRole `json:"role"`
}

// Register creates a new user account with a bcrypt password hash
func (s *MemberService) Register(req *RegisterUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toUserResponse(user), nil
}

// ListMyMemberships returns the organizations the user belongs to. Inactive
// organizations are filtered out so they cannot be selected for a session.
func (s *MemberService) ListMyMemberships(userID uuid.UUID) ([]MembershipResponse, error) {
	memberships, err := s.membershipRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		if !m.Organization.IsActive {
			continue
		}
		responses = append(responses, MembershipResponse{
			OrganizationID:   m.OrganizationID,
			OrganizationName: m.Organization.DisplayName,
			Role:             m.Role,
		})
	}
	return responses, nil
}

// ListMembers retrieves the caller's organization members with pagination
func (s *MemberService) ListMembers(ctx *tenant.Context, page, pageSize int) (*MemberListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	memberships, total, err := s.membershipRepo.GetByOrganizationID(ctx.OrganizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]MemberResponse, len(memberships))
	for i, m := range memberships {
		members[i] = MemberResponse{
			UserID:   m.UserID,
			Email:    m.User.Email,
			FullName: m.User.FullName,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		}
	}

	return &MemberListResponse{
		Members:  members,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// AddMember adds an existing user to the caller's organization. Admin only.
func (s *MemberService) AddMember(ctx *tenant.Context, req *AddMemberRequest) (*MemberResponse, error) {
	if !ctx.IsAdmin() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := s.membershipRepo.GetByOrgAndUser(ctx.OrganizationID, user.ID); err == nil {
		return nil, apperrors.ErrMembershipExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	membership := &models.OrganizationMembership{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: ctx.OrganizationID,
		UserID:         user.ID,
		Role:           req.Role,
	}

	entry, err := NewAuditEntry(ctx, EntityTypeMembership, VerbAdd, user.ID, nil, membership)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.Create(membership, entry); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &MemberResponse{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     membership.Role,
		JoinedAt: membership.CreatedAt,
	}, nil
}

// UpdateMemberRole changes a member's role. Admin only. An admin cannot
// demote themselves; that would leave role changes unattributable to an
// admin when the organization has no other one.
func (s *MemberService) UpdateMemberRole(ctx *tenant.Context, userID uuid.UUID, req *UpdateMemberRoleRequest) (*MemberResponse, error) {
	if !ctx.IsAdmin() {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	if userID == ctx.UserID && req.Role != models.MembershipRoleAdmin {
		return nil, apperrors.NewValidationError("role", "admins cannot demote themselves")
	}

	before, err := s.membershipRepo.GetByOrgAndUser(ctx.OrganizationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	after := *before
	after.Role = req.Role

	entry, err := NewAuditEntry(ctx, EntityTypeMembership, VerbRoleChange, userID, before, &after)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.UpdateRole(ctx.OrganizationID, userID, req.Role, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &MemberResponse{
		UserID:   userID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     req.Role,
		JoinedAt: before.CreatedAt,
	}, nil
}

// RemoveMember removes a member from the caller's organization. Admin only.
// Admins cannot remove themselves.
func (s *MemberService) RemoveMember(ctx *tenant.Context, userID uuid.UUID) error {
	if !ctx.IsAdmin() {
		return apperrors.ErrInsufficientRole
	}
	if userID == ctx.UserID {
		return apperrors.NewValidationError("user_id", "admins cannot remove themselves")
	}

	before, err := s.membershipRepo.GetByOrgAndUser(ctx.OrganizationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	entry, err := NewAuditEntry(ctx, EntityTypeMembership, VerbRemove, userID, before, nil)
	if err != nil {
		return err
	}

	if err := s.membershipRepo.Delete(ctx.OrganizationID, userID, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// toUserResponse converts a user model to response
func (s *MemberService) toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
