package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user successfully", func(t *testing.T) {
		user, err := NewUser("sunil.rao", "s3cret-pass", UserRoleSales)

		require.NoError(t, err)
		assert.Equal(t, "sunil.rao", user.Username)
		assert.Equal(t, UserRoleSales, user.Role)
		assert.Equal(t, UserStatusPending, user.Status)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	})

	t.Run("lowercases username", func(t *testing.T) {
		user, err := NewUser("Sunil.Rao", "s3cret-pass", UserRoleBroker)

		require.NoError(t, err)
		assert.Equal(t, "sunil.rao", user.Username)
	})

	t.Run("fails with short password", func(t *testing.T) {
		user, err := NewUser("sunil.rao", "short", UserRoleSales)

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("fails with unknown role", func(t *testing.T) {
		user, err := NewUser("sunil.rao", "s3cret-pass", UserRole("manager"))

		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("active factory skips pending", func(t *testing.T) {
		user, err := NewActiveUser("sunil.rao", "s3cret-pass", UserRoleClient)

		require.NoError(t, err)
		assert.True(t, user.IsActive())
	})
}

func TestUser_Passwords(t *testing.T) {
	user, err := NewActiveUser("sunil.rao", "s3cret-pass", UserRoleSales)
	require.NoError(t, err)

	t.Run("verify matches original", func(t *testing.T) {
		assert.True(t, user.VerifyPassword("s3cret-pass"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("change requires current password", func(t *testing.T) {
		err := user.ChangePassword("wrong", "new-password-1")
		assert.Error(t, err)

		err = user.ChangePassword("s3cret-pass", "new-password-1")
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("new-password-1"))
	})
}

func TestUser_StatusTransitions(t *testing.T) {
	user, err := NewUser("sunil.rao", "s3cret-pass", UserRoleSales)
	require.NoError(t, err)

	require.NoError(t, user.Activate())
	assert.Error(t, user.Activate())

	require.NoError(t, user.Deactivate())
	assert.False(t, user.IsActive())
	assert.Error(t, user.Deactivate())
}
