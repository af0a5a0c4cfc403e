// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// SignUpInput is the raw signup form.
type SignUpInput struct {
	Username string
	Password string
	Verify   string
	Email    string
}

// SignUpOutput carries the new account and the signed value for the session cookie.
type SignUpOutput struct {
	User   *entity.User
	Cookie string
}

// LoginInput is the raw login form.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the authenticated account and the signed value for the session cookie.
type LoginOutput struct {
	User   *entity.User
	Cookie string
}

// SessionUsecase defines the account and session cookie operations.
type SessionUsecase interface {
	// SignUp validates the form, creates the account and issues a session.
	// User-correctable failures come back as a domain ValidationErrors holding
	// every failing field.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login checks the credentials of an existing account and issues a session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ResolveSession maps a session cookie value to its account, or nil when
	// the value is missing, forged or points at no account.
	ResolveSession(ctx context.Context, cookieValue string) *entity.User
}
