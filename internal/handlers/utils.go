package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tasklist-web/internal/authn"
	"tasklist-web/internal/middlewares"
)

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// decodeJSON reads the request body into dst and answers 400 itself when the
// body is malformed. Returns false when the handler should stop.
func decodeJSON(ctx *middlewares.AppContext, dst any) bool {
	if err := json.NewDecoder(ctx.Request.Body).Decode(dst); err != nil {
		ctx.Logger.Debug("failed to decode request body", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// firstQueryParam returns the first value of the named query parameter, or
// fallback when absent.
func firstQueryParam(r *http.Request, name, fallback string) string {
	values := r.URL.Query()[name]
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}

// authErrorStatus maps the closed error taxonomy onto HTTP statuses.
func authErrorStatus(t authn.ErrorType) int {
	switch t {
	case authn.ErrorUserNotFound, authn.ErrorIncorrectPassword:
		return http.StatusUnauthorized
	case authn.ErrorEmailAlreadyExists, authn.ErrorAccountExistsWithDifferentCreds:
		return http.StatusConflict
	case authn.ErrorInvalidPassword, authn.ErrorWeakPassword, authn.ErrorMissingEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeAuthError answers a failed auth flow. The response carries only the
// taxonomy type; messages from the provider stay in the logs.
func writeAuthError(ctx *middlewares.AppContext, err error) {
	var authErr *authn.Error
	if !errors.As(err, &authErr) {
		authErr = authn.WrapError(err)
	}

	ctx.WriteJSON(authErrorStatus(authErr.Type), map[string]string{
		"error": authErr.Type.String(),
	})
}
