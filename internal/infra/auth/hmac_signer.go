package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"blog/internal/domain/service"

	"github.com/pkg/errors"
)

const tokenSeparator = "|"

// hmacSigner signs payloads with HMAC-SHA256 under a key fixed at construction.
type hmacSigner struct {
	key []byte
}

// NewHMACSigner is the constructor for hmacSigner.
func NewHMACSigner(key []byte) (service.TokenSigner, error) {
	if len(key) == 0 {
		return nil, errors.New("token signing key must be provided")
	}

	return &hmacSigner{key: append([]byte(nil), key...)}, nil
}

// Sign returns payload|hex(HMAC-SHA256(key, payload)).
func (s *hmacSigner) Sign(payload string) string {
	mac := hmac.New(sha256.New, s.key)
	_, _ = mac.Write([]byte(payload))

	return payload + tokenSeparator + hex.EncodeToString(mac.Sum(nil))
}

// Verify re-signs the extracted payload and accepts only an exact match of the whole token.
func (s *hmacSigner) Verify(token string) (string, bool) {
	payload, _, found := strings.Cut(token, tokenSeparator)
	if !found {
		return "", false
	}

	if !hmac.Equal([]byte(s.Sign(payload)), []byte(token)) {
		return "", false
	}

	return payload, true
}
