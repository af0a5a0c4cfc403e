package auth

import (
	"blog/config"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
)

// NewPasswordHasher selects the credential scheme configured under auth.passwordScheme.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	switch cfg.Auth.PasswordScheme {
	case config.PasswordSchemeSalted:
		return NewSaltedHasher(cfg.Auth.SaltLength), nil
	case config.PasswordSchemeBcrypt:
		return NewBcryptHasher(cfg.Auth.BcryptCost), nil
	default:
		return nil, errors.Errorf("unsupported password scheme %q", cfg.Auth.PasswordScheme)
	}
}

// NewTokenSigner builds the session cookie signer from secretKey.session.
func NewTokenSigner(cfg *config.Config) (service.TokenSigner, error) {
	signer, err := NewHMACSigner([]byte(cfg.SecretKey.Session))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session token signer")
	}

	return signer, nil
}
