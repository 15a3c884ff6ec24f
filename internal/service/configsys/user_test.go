package configsys

import (
	"testing"

	"confighub/internal/domain"
	svc "confighub/internal/domain/services/configsys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpdateUser(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("merges only provided fields", func(t *testing.T) {
		user, err := env.store.UpdateUser(&svc.UpdateUserRequest{Email: strPtr("grace@example.com")})
		require.NoError(t, err)

		assert.Equal(t, "Ada Lovelace", user.Name)
		assert.Equal(t, "grace@example.com", user.Email)
		assert.Equal(t, "AL", user.Avatar)
	})

	t.Run("rename re-derives initials", func(t *testing.T) {
		user, err := env.store.UpdateUser(&svc.UpdateUserRequest{Name: strPtr("Grace Hopper")})
		require.NoError(t, err)

		assert.Equal(t, "GH", user.Avatar)
		assert.Equal(t, *user, env.store.User())
	})

	t.Run("explicit avatar wins", func(t *testing.T) {
		user, err := env.store.UpdateUser(&svc.UpdateUserRequest{Name: strPtr("Grace B Hopper"), Avatar: strPtr("G")})
		require.NoError(t, err)
		assert.Equal(t, "G", user.Avatar)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := env.store.UpdateUser(&svc.UpdateUserRequest{Email: strPtr("nope")})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "grace@example.com", env.store.User().Email)
	})

	t.Run("rejects padded email without storing it", func(t *testing.T) {
		_, err := env.store.UpdateUser(&svc.UpdateUserRequest{Email: strPtr("  a@b.com  ")})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "grace@example.com", env.store.User().Email)
	})

	assert.Empty(t, env.store.RecentActivity(0), "profile updates are logged by the caller")
}
