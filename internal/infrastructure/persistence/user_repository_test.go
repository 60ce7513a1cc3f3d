package persistence

import (
	"context"
	"testing"

	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *GormUserRepository {
	t.Helper()
	db, err := NewDatabase(config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewGormUserRepository(db.DB)
}

func mustUser(t *testing.T, username string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "password1", "", role, "")
	require.NoError(t, err)
	return user
}

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := mustUser(t, "admin", identity.RoleAdmin)
	require.NoError(t, repo.Create(ctx, user))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.Username, found.Username)
		assert.Equal(t, identity.RoleAdmin, found.Role)
		assert.Equal(t, identity.BusinessUnitAll, found.BusinessUnit)
	})

	t.Run("find by username is case-insensitive on input", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "ADMIN")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, identity.ErrUserNotFound)
	})
}

func TestGormUserRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := mustUser(t, "manager1", identity.RoleManager)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, user.ChangeRole(identity.RoleAccountant))
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByUsername(ctx, "manager1")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleAccountant, found.Role)
}

func TestGormUserRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := mustUser(t, "temp", identity.RoleAccountant)
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), identity.ErrUserNotFound)
}

func TestGormUserRepository_Queries(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, mustUser(t, "admin", identity.RoleAdmin)))
	require.NoError(t, repo.Create(ctx, mustUser(t, "acct1", identity.RoleAccountant)))
	require.NoError(t, repo.Create(ctx, mustUser(t, "acct2", identity.RoleAccountant)))

	t.Run("find all", func(t *testing.T) {
		users, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("exists by username", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "Admin")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("count by role", func(t *testing.T) {
		count, err := repo.CountByRole(ctx, identity.RoleAccountant)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		count, err = repo.CountByRole(ctx, identity.RoleManager)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}
