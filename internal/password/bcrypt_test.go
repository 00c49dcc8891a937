package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, h.Matches(hash, "secret123"))
	assert.False(t, h.Matches(hash, "wrongpass"))
	assert.False(t, h.Matches("not-a-hash", "secret123"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcrypt_CostFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
}

func TestBcrypt_TooLong(t *testing.T) {
	t.Parallel()

	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
