package service

import (
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze3d/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "violet-Harbor-92-lantern"

func TestAuth(t *testing.T) {
	repo := newMemPlayerRepo()
	auth, err := NewAuthService(repo, fakeTokenizer{})
	require.NoError(t, err)

	t.Run("register then sign in", func(t *testing.T) {
		player, err := auth.Register("runner_one", testPassword)
		require.NoError(t, err)

		signedIn, token, err := auth.SignIn("runner_one", testPassword)
		require.NoError(t, err)
		assert.Equal(t, player.ID, signedIn.ID)
		assert.Equal(t, "token-runner_one", token)
	})

	t.Run("rejects taken usernames", func(t *testing.T) {
		_, err := auth.Register("runner_one", testPassword)
		assert.ErrorIs(t, err, dmn.ErrUsernameTaken)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := auth.Register("runner_two", "123456")
		assert.ErrorIs(t, err, dmn.ErrWeakPassword)
	})

	t.Run("rejects bad credentials", func(t *testing.T) {
		_, _, err := auth.SignIn("runner_one", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.SignIn("nobody", testPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	_, err = NewAuthService(nil, fakeTokenizer{})
	assert.Error(t, err)
}
