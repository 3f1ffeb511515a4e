package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// POSTPasswordResetHandler asks the identity provider to email a password
// reset link.
func POSTPasswordResetHandler(ctx *middlewares.AppContext) {
	var req PasswordResetRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.SendPasswordResetEmailFor(ctx, req.Email); err != nil {
		ctx.Logger.Info("password reset request failed", "email", RedactEmail(req.Email), "error", err)
		writeAuthError(ctx, err)
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "ok")
}
