package idp

import (
	"fmt"
	"strings"
)

// Error is a provider rejection carrying the canonical auth error code. It
// implements authn.Coder so the composable boundary can map it onto the
// closed error taxonomy.
type Error struct {
	ErrCode string
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("idp: %s: %s", e.ErrCode, e.Message)
	}
	return fmt.Sprintf("idp: %s", e.ErrCode)
}

func (e *Error) Code() string {
	return e.ErrCode
}

// normalizeCode translates the provider's REST status strings into the
// canonical auth/... codes. Statuses sometimes arrive with a trailing
// explanation ("WEAK_PASSWORD : Password should be at least 6 characters"),
// so only the first token counts.
func normalizeCode(status string) string {
	if i := strings.IndexAny(status, " :"); i >= 0 {
		status = status[:i]
	}

	switch status {
	case "EMAIL_NOT_FOUND", "USER_NOT_FOUND":
		return "auth/user-not-found"
	case "INVALID_PASSWORD":
		return "auth/wrong-password"
	case "EMAIL_EXISTS":
		return "auth/email-already-exists"
	case "INVALID_LOGIN_CREDENTIALS":
		return "auth/wrong-password"
	case "WEAK_PASSWORD":
		return "auth/weak-password"
	case "MISSING_EMAIL":
		return "auth/missing-email"
	case "FEDERATED_USER_ID_ALREADY_LINKED", "ACCOUNT_EXISTS_WITH_DIFFERENT_CREDENTIAL":
		return "auth/account-exists-with-different-credential"
	default:
		return "auth/" + strings.ToLower(strings.ReplaceAll(status, "_", "-"))
	}
}
