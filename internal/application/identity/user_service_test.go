package identity

import (
	"context"
	"testing"

	"github.com/estate/backend/internal/domain/identity"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role identity.UserRole, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, role, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("ExistsByUsername", ctx, "ravi.mehta").Return(false, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := svc.Create(ctx, CreateUserRequest{
			Username:    "ravi.mehta",
			Password:    "s3cret-pass",
			Role:        "sales",
			DisplayName: "Ravi Mehta",
		})

		require.NoError(t, err)
		assert.Equal(t, "ravi.mehta", resp.Username)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, "sales", resp.Role)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("ExistsByUsername", ctx, "ravi.mehta").Return(true, nil)

		_, err := svc.Create(ctx, CreateUserRequest{
			Username: "ravi.mehta",
			Password: "s3cret-pass",
			Role:     "sales",
		})

		require.Error(t, err)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	newActive := func(t *testing.T) *identity.User {
		t.Helper()
		user, err := identity.NewActiveUser("ravi.mehta", "s3cret-pass", identity.UserRoleSales)
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials record the login", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		user := newActive(t)
		userRepo.On("FindByUsername", ctx, "ravi.mehta").Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)

		resp, err := svc.Authenticate(ctx, LoginRequest{Username: "ravi.mehta", Password: "s3cret-pass"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.ID)
		assert.NotNil(t, resp.LastLoginAt)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		user := newActive(t)
		userRepo.On("FindByUsername", ctx, "ravi.mehta").Return(user, nil)

		_, err := svc.Authenticate(ctx, LoginRequest{Username: "ravi.mehta", Password: "wrong-pass"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username fails the same way", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		userRepo.On("FindByUsername", ctx, "ghost").Return(nil, shared.ErrNotFound)

		_, err := svc.Authenticate(ctx, LoginRequest{Username: "ghost", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		user := newActive(t)
		require.NoError(t, user.Deactivate())
		userRepo.On("FindByUsername", ctx, "ravi.mehta").Return(user, nil)

		_, err := svc.Authenticate(ctx, LoginRequest{Username: "ravi.mehta", Password: "s3cret-pass"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		user, err := identity.NewActiveUser("ravi.mehta", "s3cret-pass", identity.UserRoleSales)
		require.NoError(t, err)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err = svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			OldPassword: "wrong-pass",
			NewPassword: "n3w-secret-pass",
		})

		require.Error(t, err)
		userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("role-narrowed total counts only matching users", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewUserService(userRepo)

		user, err := identity.NewUser("ravi.mehta", "s3cret-pass", identity.UserRoleSales)
		require.NoError(t, err)

		role := identity.UserRoleSales
		filter := shared.DefaultFilter()
		userRepo.On("FindByRole", ctx, role, filter).
			Return([]identity.User{*user}, nil)
		userRepo.On("Count", ctx, mock.MatchedBy(func(fl shared.Filter) bool {
			return fl.Filters["role"] == role
		})).Return(int64(1), nil)

		resp, err := svc.List(ctx, &role, filter)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Total)
		userRepo.AssertExpectations(t)
	})
}
