package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GitMovi52027/movi5/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("abcd1234")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "abcd1234", hash)

	assert.NoError(t, password.Verify("abcd1234", hash))
	assert.ErrorIs(t, password.Verify("wrong-password", hash), password.ErrInvalidPassword)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}

func TestVerify_EmptyArguments(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "some-hash"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("some-password", ""), password.ErrInvalidPassword)
}

func TestHash_ProducesDistinctHashes(t *testing.T) {
	first, err := password.Hash("abcd1234")
	assert.NoError(t, err)

	second, err := password.Hash("abcd1234")
	assert.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
