package identity

import (
	"context"
	"testing"
	"time"

	"github.com/bizmaster/backend/internal/domain/identity"
	"github.com/bizmaster/backend/internal/infrastructure/auth"
	"github.com/bizmaster/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryUserRepository is an in-memory identity.UserRepository for tests
type memoryUserRepository struct {
	users map[uuid.UUID]*identity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uuid.UUID]*identity.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *identity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *identity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return identity.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return identity.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, identity.ErrUserNotFound
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, identity.ErrUserNotFound
}

func (r *memoryUserRepository) FindAll(_ context.Context) ([]*identity.User, error) {
	out := make([]*identity.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out, nil
}

func (r *memoryUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *memoryUserRepository) CountByRole(_ context.Context, role identity.Role) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-0123456789abcdef0123",
		Expiration: 8 * time.Hour,
		Issuer:     "bizmaster-test",
	})
}

func TestAuthService_Login(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewAuthService(repo, newTestJWTService(), zap.NewNop())

	user, err := identity.NewUser("admin", "admin123", "System Administrator", identity.RoleAdmin, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))

	t.Run("issues token on valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "admin123"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "admin", resp.User.Username)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("rejects unknown user with the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "admin123"})
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newMemoryUserRepository()
	svc := NewAuthService(repo, newTestJWTService(), zap.NewNop())

	user, err := identity.NewUser("manager1", "old-secret", "", identity.RoleManager, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))

	t.Run("rotates with correct current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), "manager1", ChangePasswordRequest{
			CurrentPassword: "old-secret",
			NewPassword:     "new-secret",
		})

		require.NoError(t, err)
		assert.True(t, user.CheckPassword("new-secret"))
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), "manager1", ChangePasswordRequest{
			CurrentPassword: "old-secret",
			NewPassword:     "another",
		})

		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})
}
