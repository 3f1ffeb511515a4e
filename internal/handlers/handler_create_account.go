package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// POSTCreateAccountHandler registers a new email-and-password account and
// signs the visitor in.
func POSTCreateAccountHandler(ctx *middlewares.AppContext) {
	var req CreateAccountRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.CreateAccount(ctx, req.Email, req.Password, req.Name); err != nil {
		ctx.Logger.Info("account creation failed", "email", RedactEmail(req.Email), "error", err)
		writeAuthError(ctx, err)
		return
	}

	ctx.Logger.Info("account created", "email", RedactEmail(req.Email))

	ctx.WriteJSON(http.StatusCreated, SignInResponse{
		Status:   "ok",
		Redirect: consumeRedirect(ctx),
	})
}
