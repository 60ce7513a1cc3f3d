package identity

import "github.com/bizmaster/backend/internal/domain/shared"

var (
	ErrInvalidRole        = shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	ErrUserNotFound       = shared.NewDomainError("USER_NOT_FOUND", "User not found")
	ErrUsernameTaken      = shared.NewDomainError("USERNAME_TAKEN", "Username already exists")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	ErrLastAdmin          = shared.NewDomainError("LAST_ADMIN", "Cannot remove the last admin account")
)
