package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
	"strings"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// credentialSeparator joins digest and salt. Neither the hex digest nor the
	// alphanumeric salt can contain it.
	credentialSeparator = ","
)

// SaltedHasher stores credentials as hex(SHA-256(identity || password || salt)) + "," + salt.
type SaltedHasher struct {
	saltLength int
}

// NewSaltedHasher is the constructor for SaltedHasher.
func NewSaltedHasher(saltLength int) *SaltedHasher {
	return &SaltedHasher{saltLength: saltLength}
}

var _ service.PasswordHasher = (*SaltedHasher)(nil)

// Hash generates a fresh salt and returns the stored credential.
func (h *SaltedHasher) Hash(identity, password string) (string, error) {
	salt, err := h.newSalt()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	return h.HashWithSalt(identity, password, salt), nil
}

// HashWithSalt is Hash with a caller-supplied salt.
func (h *SaltedHasher) HashWithSalt(identity, password, salt string) string {
	sum := sha256.Sum256([]byte(identity + password + salt))

	return hex.EncodeToString(sum[:]) + credentialSeparator + salt
}

// Verify recomputes the credential with the embedded salt and compares it in constant time.
func (h *SaltedHasher) Verify(identity, password, storedHash string) (bool, error) {
	idx := strings.LastIndex(storedHash, credentialSeparator)
	if idx < 0 {
		return false, domainerrors.NewCorruptCredentialError("missing salt separator")
	}

	salt := storedHash[idx+len(credentialSeparator):]
	recomputed := h.HashWithSalt(identity, password, salt)

	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(storedHash)) == 1, nil
}

func (h *SaltedHasher) newSalt() (string, error) {
	alphabetLen := big.NewInt(int64(len(saltAlphabet)))

	var b strings.Builder
	b.Grow(h.saltLength)
	for range h.saltLength {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		b.WriteByte(saltAlphabet[n.Int64()])
	}

	return b.String(), nil
}
