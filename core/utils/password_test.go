package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := HashPassword("secret")
		require.NoError(t, err)

		assert.NotEqual(t, "secret", hash)
		assert.True(t, CheckPassword(hash, "secret"))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := HashPassword("secret")
		require.NoError(t, err)

		assert.False(t, CheckPassword(hash, "Secret"))
		assert.False(t, CheckPassword(hash, ""))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		first, err := HashPassword("secret")
		require.NoError(t, err)
		second, err := HashPassword("secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
