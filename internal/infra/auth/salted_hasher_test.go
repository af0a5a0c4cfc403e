package auth

import (
	"strings"
	"testing"

	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaltedHasher_HashAndVerify(t *testing.T) {
	hasher := NewSaltedHasher(16)

	cases := []struct {
		identity string
		password string
	}{
		{"alice", "secret"},
		{"bob_42", "x"},
		{"with-dash", "pässwörd with spaces"},
		{"", ""},
	}

	for _, tc := range cases {
		stored, err := hasher.Hash(tc.identity, tc.password)
		require.NoError(t, err)

		// The salt is random alphanumerics and may contain a short password by chance.
		digest, _, found := strings.Cut(stored, ",")
		require.True(t, found)
		if tc.password != "" {
			assert.NotContains(t, digest, tc.password, "digest must not embed the plaintext")
		}

		ok, err := hasher.Verify(tc.identity, tc.password, stored)
		require.NoError(t, err)
		assert.True(t, ok, "identity %q should verify", tc.identity)

		ok, err = hasher.Verify(tc.identity, tc.password+"!", stored)
		require.NoError(t, err)
		assert.False(t, ok, "wrong password must not verify")

		ok, err = hasher.Verify(tc.identity+"x", tc.password, stored)
		require.NoError(t, err)
		assert.False(t, ok, "credential is bound to its identity")
	}
}

func TestSaltedHasher_ShortPasswordNotEmbedded(t *testing.T) {
	hasher := NewSaltedHasher(16)

	for i := 0; i < 200; i++ {
		stored, err := hasher.Hash("bob_42", "x")
		require.NoError(t, err)

		digest, salt, found := strings.Cut(stored, ",")
		require.True(t, found)
		assert.Regexp(t, `^[0-9a-f]{64}$`, digest)
		assert.NotContains(t, digest, "x")
		assert.Len(t, salt, 16)
	}

	assert.NotContains(t, hasher.HashWithSalt("bob_42", "x", "ABCDEFGH"), "x")
}

func TestSaltedHasher_Format(t *testing.T) {
	hasher := NewSaltedHasher(5)

	stored, err := hasher.Hash("alice", "secret")
	require.NoError(t, err)

	digest, salt, found := strings.Cut(stored, ",")
	require.True(t, found)
	assert.Len(t, digest, 64)
	assert.Len(t, salt, 5)
	for _, r := range salt {
		assert.Contains(t, saltAlphabet, string(r))
	}

	assert.Equal(t, stored, hasher.HashWithSalt("alice", "secret", salt))
}

func TestSaltedHasher_HashWithSaltIsDeterministic(t *testing.T) {
	hasher := NewSaltedHasher(16)

	// sha256("alicesecretabcde")
	h1 := hasher.HashWithSalt("alice", "secret", "abcde")
	h2 := hasher.HashWithSalt("alice", "secret", "abcde")
	assert.Equal(t, h1, h2)
	assert.True(t, strings.HasSuffix(h1, ",abcde"))

	assert.NotEqual(t, h1, hasher.HashWithSalt("alice", "secret", "abcdf"))
}

func TestSaltedHasher_FreshSaltPerCredential(t *testing.T) {
	hasher := NewSaltedHasher(16)

	a, err := hasher.Hash("alice", "secret")
	require.NoError(t, err)
	b, err := hasher.Hash("alice", "secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSaltedHasher_VerifyCorruptCredential(t *testing.T) {
	hasher := NewSaltedHasher(16)

	ok, err := hasher.Verify("alice", "secret", "no-separator-here")
	assert.False(t, ok)

	var corrupt *domainerrors.CorruptCredentialError
	require.True(t, errors.As(err, &corrupt))
	assert.NotContains(t, err.Error(), "no-separator-here")
}
