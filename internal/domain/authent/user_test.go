package authent

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	structureID := uuid.New()

	t.Run("creates active user with hashed password", func(t *testing.T) {
		u, err := NewUser("rando", "s3cret-pass", structureID)
		require.NoError(t, err)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "s3cret-pass", u.Password)
		assert.True(t, u.CheckPassword("s3cret-pass"))
		assert.False(t, u.CheckPassword("wrong"))
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("rando", "short", structureID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8")
	})

	t.Run("rejects missing structure", func(t *testing.T) {
		_, err := NewUser("rando", "s3cret-pass", uuid.Nil)
		require.Error(t, err)
	})
}

func TestUserPermissions(t *testing.T) {
	structureID := uuid.New()

	t.Run("permissions flatten across roles without duplicates", func(t *testing.T) {
		editor, err := NewRole("editor", "", []string{"trek:read", "trek:update"})
		require.NoError(t, err)
		publisher, err := NewRole("publisher", "", []string{"trek:read", "trek:publish"})
		require.NoError(t, err)

		u, err := NewUser("rando", "s3cret-pass", structureID)
		require.NoError(t, err)
		u.Roles = []Role{*editor, *publisher}

		perms := u.Permissions()
		assert.ElementsMatch(t, []string{"trek:read", "trek:update", "trek:publish"}, perms)
	})

	t.Run("full name falls back to username", func(t *testing.T) {
		u, err := NewUser("rando", "s3cret-pass", structureID)
		require.NoError(t, err)
		assert.Equal(t, "rando", u.FullName())
		u.UpdateProfile("", "Jean", "Dupont")
		assert.Equal(t, "Jean Dupont", u.FullName())
	})
}

func TestValidatePermissions(t *testing.T) {
	t.Run("accepts known resource and action", func(t *testing.T) {
		require.NoError(t, ValidatePermissions([]string{"signage:bypass_structure", "report:read"}))
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		err := ValidatePermissions([]string{"trekread"})
		require.Error(t, err)
	})

	t.Run("rejects unknown resource", func(t *testing.T) {
		err := ValidatePermissions([]string{"billing:read"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown permission resource")
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		err := ValidatePermissions([]string{"trek:fly"})
		require.Error(t, err)
	})
}
