package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// POSTSignInHandler authenticates an email and password and completes the
// credential exchange. On success the response carries the destination the
// visitor was originally after, if the route guard recorded one.
func POSTSignInHandler(ctx *middlewares.AppContext) {
	var req SignInRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.SignIn(ctx, req.Email, req.Password); err != nil {
		ctx.Logger.Info("sign-in failed", "email", RedactEmail(req.Email), "error", err)
		writeAuthError(ctx, err)
		return
	}

	ctx.Logger.Info("user signed in", "email", RedactEmail(req.Email))

	ctx.WriteJSON(http.StatusOK, SignInResponse{
		Status:   "ok",
		Redirect: consumeRedirect(ctx),
	})
}

// consumeRedirect pops the destination recorded by the route guard, falling
// back to the application root.
func consumeRedirect(ctx *middlewares.AppContext) string {
	redirectTo := ctx.Sessions.RedirectAfterLogin(ctx)
	if redirectTo == "" {
		return "/"
	}

	ctx.Sessions.ClearRedirectAfterLogin(ctx)
	return redirectTo
}
