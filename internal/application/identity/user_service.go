package identity

import (
	"context"
	"time"

	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService provides account administration operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// UserResponse represents an account in API responses. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	FullName     string     `json:"full_name,omitempty"`
	Role         string     `json:"role"`
	BusinessUnit string     `json:"business_unit"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateUserRequest represents a request to create an account
type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"full_name"`
	Role         string `json:"role" binding:"required"`
	BusinessUnit string `json:"business_unit"`
}

// UpdateUserRequest represents a request to update an account. Empty fields
// are left unchanged.
type UpdateUserRequest struct {
	FullName     *string `json:"full_name"`
	Role         *string `json:"role"`
	BusinessUnit *string `json:"business_unit"`
	Password     *string `json:"password"`
}

// RoleResponse describes one role and its feature permissions
type RoleResponse struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Permissions map[string]bool `json:"permissions"`
}

// CreateUser creates a new account with a unique username
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, identity.ErrUsernameTaken
	}

	user, err := identity.NewUser(req.Username, req.Password, req.FullName, identity.Role(req.Role), req.BusinessUnit)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))
	return toUserResponse(user), nil
}

// UpdateUser applies partial changes to an account. Demoting the last admin
// is rejected so the system cannot lock itself out.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil && identity.Role(*req.Role) != user.Role {
		if user.Role == identity.RoleAdmin {
			if err := s.ensureNotLastAdmin(ctx); err != nil {
				return nil, err
			}
		}
		if err := user.ChangeRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.BusinessUnit != nil && *req.BusinessUnit != "" {
		user.BusinessUnit = *req.BusinessUnit
	}
	if req.Password != nil {
		if err := user.ChangePassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// DeleteUser removes an account, refusing to delete the last admin
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == identity.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return err
		}
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.String("username", user.Username))
	return nil
}

// GetUser returns one account by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers returns every account ordered by creation time
func (s *UserService) ListUsers(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// ListRoles describes the fixed roles and their permissions
func (s *UserService) ListRoles() []*RoleResponse {
	roles := identity.AllRoles()
	out := make([]*RoleResponse, 0, len(roles))
	for _, r := range roles {
		perms := make(map[string]bool, len(identity.AllFeatures()))
		for f, allowed := range r.Permissions() {
			perms[string(f)] = allowed
		}
		out = append(out, &RoleResponse{
			Name:        string(r),
			Description: r.Description(),
			Permissions: perms,
		})
	}
	return out
}

// EnsureAdmin creates the bootstrap admin account when no user holds it yet
func (s *UserService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, cfg.Username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewUser(cfg.Username, cfg.Password, cfg.FullName, identity.RoleAdmin, identity.BusinessUnitAll)
	if err != nil {
		return err
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("Bootstrap admin created", zap.String("username", admin.Username))
	return nil
}

func (s *UserService) ensureNotLastAdmin(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if count <= 1 {
		return identity.ErrLastAdmin
	}
	return nil
}

func toUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Role:         string(u.Role),
		BusinessUnit: u.BusinessUnit,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}
