// Package idp wraps the third-party identity provider. The provider is used
// strictly as a one-time token issuer: the composable exchanges its ID tokens
// for a backend session cookie and then terminates the provider-side session.
package idp

import (
	"context"
	"time"

	"tasklist-web/internal/authn"
)

//go:generate mockgen -source=idp.go -destination=../mocks/idp.go -package=mocks

// Credential is the result of a successful provider authentication. It lives
// only for the duration of the credential exchange.
type Credential struct {
	IDToken      string
	RefreshToken string
	UserID       string
	Email        string
}

// Token holds the verified claims of a backend session cookie.
type Token struct {
	UserID   string
	Email    string
	Provider authn.Provider
	AuthTime time.Time
}

// Provider is the identity-provider surface the session composable and the
// route guard consume.
type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Credential, error)
	CreateUser(ctx context.Context, email, password string) (*Credential, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	SignOut(ctx context.Context, cred *Credential) error
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*Token, error)
}
