// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns a password into a storable credential and checks
// candidate passwords against it.
type PasswordHasher interface {
	// Hash returns the stored form of password for identity with a fresh salt.
	Hash(identity, password string) (string, error)

	// Verify reports whether password matches storedHash. A wrong password is
	// (false, nil); a storedHash that cannot be parsed yields a
	// *errors.CorruptCredentialError.
	Verify(identity, password, storedHash string) (bool, error)
}
