package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// GETFederatedCallbackHandler finishes a federated sign-in: it validates the
// provider callback, exchanges the resulting credential for a backend
// session, and lands the visitor where the guard originally stopped them.
func GETFederatedCallbackHandler(ctx *middlewares.AppContext) {
	name := ctx.Sessions.OauthProvider(ctx)

	provider, err := ctx.Federated.Lookup(name)
	if err != nil {
		ctx.Logger.Warn("federated callback without a live flow", "provider", name, "error", err)
		ctx.Redirect(ctx.Config.Guard.SignInPath+"?error=auth_failed", http.StatusFound)
		return
	}

	cred, err := provider.HandleCallback(ctx, ctx.Sessions, ctx.Request.URL.Query())
	if err != nil {
		ctx.Logger.Error("federated callback failed", "provider", name, "error", err)
		ctx.Redirect(ctx.Config.Guard.SignInPath+"?error=auth_failed", http.StatusFound)
		return
	}

	if err := ctx.Session.SignInWithCredential(ctx, cred); err != nil {
		ctx.Logger.Error("credential exchange failed after federated sign-in", "provider", name, "error", err)
		ctx.Redirect(ctx.Config.Guard.SignInPath+"?error=auth_failed", http.StatusFound)
		return
	}

	ctx.Logger.Info("user signed in via federated provider",
		"provider", name,
		"email", RedactEmail(cred.Email),
	)

	ctx.Redirect(consumeRedirect(ctx), http.StatusFound)
}
