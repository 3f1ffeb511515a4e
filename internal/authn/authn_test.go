package authn

import (
	"errors"
	"testing"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		code     string
		expected ErrorType
	}{
		{"auth/user-not-found", ErrorUserNotFound},
		{"auth/wrong-password", ErrorIncorrectPassword},
		{"auth/email-already-exists", ErrorEmailAlreadyExists},
		{"auth/invalid-password", ErrorInvalidPassword},
		{"auth/weak-password", ErrorWeakPassword},
		{"auth/missing-email", ErrorMissingEmail},
		{"auth/account-exists-with-different-credential", ErrorAccountExistsWithDifferentCreds},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := MapCode(tt.code); got != tt.expected {
				t.Errorf("MapCode(%q) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestMapCode_UnknownCodesAreGeneric(t *testing.T) {
	unknown := []string{
		"",
		"auth/internal-error",
		"auth/too-many-requests",
		"auth/id-token-expired",
		"not-even-an-auth-code",
	}

	for _, code := range unknown {
		if got := MapCode(code); got != ErrorGeneric {
			t.Errorf("MapCode(%q) = %v, want ErrorGeneric", code, got)
		}
	}
}

type codedErr struct {
	code string
}

func (e *codedErr) Error() string { return "provider rejected request" }
func (e *codedErr) Code() string  { return e.code }

func TestWrapError(t *testing.T) {
	cause := &codedErr{code: "auth/wrong-password"}

	err := WrapError(cause)
	if err.Type != ErrorIncorrectPassword {
		t.Errorf("WrapError type = %v, want ErrorIncorrectPassword", err.Type)
	}
	if !errors.Is(err, cause) {
		t.Error("WrapError should wrap the original cause")
	}
}

func TestWrapError_PlainErrorIsGeneric(t *testing.T) {
	err := WrapError(errors.New("connection refused"))
	if err.Type != ErrorGeneric {
		t.Errorf("WrapError type = %v, want ErrorGeneric", err.Type)
	}
}

func TestWrapError_PassesThroughAuthError(t *testing.T) {
	orig := &Error{Type: ErrorMissingEmail, Message: "no email"}
	if got := WrapError(orig); got != orig {
		t.Error("WrapError should return an existing *Error unchanged")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if got := WrapError(nil); got != nil {
		t.Errorf("WrapError(nil) = %v, want nil", got)
	}
}

func TestParseProvider(t *testing.T) {
	if _, err := ParseProvider("github"); err == nil {
		t.Error("expected error for unknown provider")
	}

	p, err := ParseProvider("google")
	if err != nil {
		t.Fatalf("ParseProvider(google) returned error: %v", err)
	}
	if p != Google {
		t.Errorf("ParseProvider(google) = %v, want Google", p)
	}
}
