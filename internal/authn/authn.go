// Package authn holds the domain types shared across the auth frontend:
// the provider set, the minimal signed-in user snapshot, and the closed
// error taxonomy that identity-provider failures are mapped onto.
package authn

import "fmt"

// Provider identifies the underlying mechanism a visitor authenticated with.
type Provider string

const (
	UnknownProvider = Provider("")
	Google          = Provider("google")
	EmailAndPass    = Provider("email_and_pass")
	Facebook        = Provider("facebook")
)

// ParseProvider resolves a provider name from a request path or query value.
// Unknown values fail fast, before any network call is made.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case Google, Facebook, EmailAndPass:
		return Provider(s), nil
	default:
		return UnknownProvider, fmt.Errorf("unknown auth provider %q", s)
	}
}

// UserInfo is the minimal identity snapshot returned by the session login
// exchange. A nil *UserInfo means "not signed in".
type UserInfo struct {
	Email string `json:"email"`
}

// ErrorType is the closed set of auth failure kinds exposed to callers.
type ErrorType int

const (
	// Any error not described by another ErrorType value.
	ErrorGeneric ErrorType = iota
	// No user with the given credentials was found.
	ErrorUserNotFound
	// The password given was incorrect.
	ErrorIncorrectPassword
	// The email is already attached to an account.
	ErrorEmailAlreadyExists
	// The password uses some invalid characters.
	ErrorInvalidPassword
	// The password doesn't meet the minimum password requirements.
	ErrorWeakPassword
	// No email was provided.
	ErrorMissingEmail
	// The account exists, but is tied to a different auth mechanism.
	ErrorAccountExistsWithDifferentCreds
)

func (t ErrorType) String() string {
	switch t {
	case ErrorUserNotFound:
		return "user_not_found"
	case ErrorIncorrectPassword:
		return "incorrect_password"
	case ErrorEmailAlreadyExists:
		return "email_already_exists"
	case ErrorInvalidPassword:
		return "invalid_password"
	case ErrorWeakPassword:
		return "weak_password"
	case ErrorMissingEmail:
		return "missing_email"
	case ErrorAccountExistsWithDifferentCreds:
		return "account_exists_with_different_creds"
	default:
		return "generic"
	}
}

// Error is the only error type the session composable surfaces from sign-in
// flows. It is constructed exclusively at the boundary between provider
// errors and application logic; raw provider or HTTP errors never escape.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth: %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("auth: %s", e.Type)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Coder is implemented by errors that carry a canonical provider error code.
type Coder interface {
	Code() string
}

// MapCode translates a provider error code onto the closed ErrorType set.
// The default case is deliberate: no provider code may propagate unmapped.
// See https://firebase.google.com/docs/auth/admin/errors for the code names.
func MapCode(code string) ErrorType {
	switch code {
	case "auth/user-not-found":
		return ErrorUserNotFound
	case "auth/wrong-password":
		return ErrorIncorrectPassword
	case "auth/email-already-exists":
		return ErrorEmailAlreadyExists
	case "auth/invalid-password":
		return ErrorInvalidPassword
	case "auth/weak-password":
		return ErrorWeakPassword
	case "auth/missing-email":
		return ErrorMissingEmail
	case "auth/account-exists-with-different-credential":
		return ErrorAccountExistsWithDifferentCreds
	default:
		return ErrorGeneric
	}
}

// WrapError converts any error from a sign-in flow into an *Error, using the
// provider code when the cause carries one. An existing *Error passes through
// unchanged.
func WrapError(err error) *Error {
	if err == nil {
		return nil
	}

	if authErr, ok := err.(*Error); ok {
		return authErr
	}

	code := ""
	if coder, ok := err.(Coder); ok {
		code = coder.Code()
	}

	return &Error{
		Type:    MapCode(code),
		Message: err.Error(),
		Cause:   err,
	}
}
