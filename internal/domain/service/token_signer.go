package service

// TokenSigner wraps an opaque payload in an HMAC signature and unwraps it again.
type TokenSigner interface {
	// Sign returns payload|signature.
	Sign(payload string) string

	// Verify returns the payload of a token it signed itself. Any malformed or
	// forged token reports ok == false.
	Verify(token string) (payload string, ok bool)
}
