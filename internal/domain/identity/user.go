package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/bizmaster/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// BusinessUnitAll marks a user scoped to every business unit
const BusinessUnitAll = "All"

var usernamePattern = regexp.MustCompile(`^[a-z0-9_.-]{3,50}$`)

// User is the account aggregate. PasswordHash is a bcrypt hash; the plain
// password never leaves the constructor or ChangePassword.
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	BusinessUnit string
	LastLoginAt  *time.Time
}

// NewUser creates an account with a validated username, role, and password
func NewUser(username, password, fullName string, role Role, businessUnit string) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if businessUnit == "" {
		businessUnit = BusinessUnitAll
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		BusinessUnit: businessUnit,
	}, nil
}

// CheckPassword reports whether the plain password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after validating the new password
func (u *User) ChangePassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	return nil
}

// ChangeRole switches the user to another known role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.Role = role
	return nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
}

// CanAccess reports whether the user's role grants the feature
func (u *User) CanAccess(feature Feature) bool {
	return u.Role.HasPermission(feature)
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be 3-50 characters of letters, digits, dot, dash, or underscore")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 6 characters")
	}
	if len(password) > 72 {
		// bcrypt truncates past 72 bytes
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
