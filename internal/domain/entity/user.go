// Package entity contains the core business objects of the blog.
package entity

import "time"

// User is a registered account. It is created once at signup and never updated.
type User struct {
	ID           int64     // Assigned by the store, immutable afterwards.
	Username     string    // Unique, case-sensitive login name.
	PasswordHash string    // Stored credential, never the plaintext.
	Email        string    // Optional; empty when not provided.
	CreatedAt    time.Time // Timestamp of signup.
}

// HasEmail reports whether the user supplied an email address at signup.
func (u *User) HasEmail() bool {
	return u.Email != ""
}
