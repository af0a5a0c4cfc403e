package auth

import (
	"testing"

	"blog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordHasher_SelectsScheme(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	hasher, err := NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SaltedHasher{}, hasher)

	cfg.Auth.PasswordScheme = config.PasswordSchemeBcrypt
	hasher, err = NewPasswordHasher(cfg)
	require.NoError(t, err)
	assert.IsType(t, &bcryptHasher{}, hasher)

	cfg.Auth.PasswordScheme = "plaintext"
	_, err = NewPasswordHasher(cfg)
	assert.Error(t, err)
}

func TestNewTokenSigner_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewTokenSigner(cfg)
	assert.ErrorContains(t, err, "signing key")

	cfg.SecretKey.Session = "0123456789abcdef"
	signer, err := NewTokenSigner(cfg)
	require.NoError(t, err)

	payload, ok := signer.Verify(signer.Sign("3"))
	assert.True(t, ok)
	assert.Equal(t, "3", payload)
}
