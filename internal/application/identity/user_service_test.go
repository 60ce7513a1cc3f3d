package identity

import (
	"context"
	"testing"

	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_CreateUser(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	t.Run("creates account", func(t *testing.T) {
		resp, err := svc.CreateUser(ctx, CreateUserRequest{
			Username: "manager1",
			Password: "secret-1",
			FullName: "Unit Manager",
			Role:     "manager",
		})

		require.NoError(t, err)
		assert.Equal(t, "manager1", resp.Username)
		assert.Equal(t, "manager", resp.Role)
		assert.Equal(t, identity.BusinessUnitAll, resp.BusinessUnit)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, CreateUserRequest{
			Username: "manager1",
			Password: "secret-2",
			Role:     "manager",
		})

		assert.ErrorIs(t, err, identity.ErrUsernameTaken)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.CreateUser(ctx, CreateUserRequest{
			Username: "owner1",
			Password: "secret-1",
			Role:     "owner",
		})

		assert.ErrorIs(t, err, identity.ErrInvalidRole)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, CreateUserRequest{Username: "admin", Password: "admin123", Role: "admin"})
	require.NoError(t, err)
	acct, err := svc.CreateUser(ctx, CreateUserRequest{Username: "acct", Password: "secret-1", Role: "accountant"})
	require.NoError(t, err)

	t.Run("updates fields", func(t *testing.T) {
		role := "manager"
		name := "Promoted Accountant"
		resp, err := svc.UpdateUser(ctx, acct.ID, UpdateUserRequest{Role: &role, FullName: &name})

		require.NoError(t, err)
		assert.Equal(t, "manager", resp.Role)
		assert.Equal(t, "Promoted Accountant", resp.FullName)
	})

	t.Run("refuses to demote the last admin", func(t *testing.T) {
		role := "accountant"
		_, err := svc.UpdateUser(ctx, admin.ID, UpdateUserRequest{Role: &role})

		assert.ErrorIs(t, err, identity.ErrLastAdmin)
	})

	t.Run("refuses to delete the last admin", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID), identity.ErrLastAdmin)
	})

	t.Run("deletes non-admin accounts", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctx, acct.ID))
		_, err := svc.GetUser(ctx, acct.ID)
		assert.ErrorIs(t, err, identity.ErrUserNotFound)
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	cfg := config.AdminConfig{Username: "admin", Password: "admin123", FullName: "System Administrator"}

	require.NoError(t, svc.EnsureAdmin(ctx, cfg))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)

	// Idempotent on restart.
	require.NoError(t, svc.EnsureAdmin(ctx, cfg))
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_ListRoles(t *testing.T) {
	svc := NewUserService(newMemoryUserRepository(), zap.NewNop())

	roles := svc.ListRoles()

	require.Len(t, roles, 3)
	assert.Equal(t, "admin", roles[0].Name)
	assert.True(t, roles[0].Permissions["data_reset"])
	assert.False(t, roles[1].Permissions["user_management"])
}
