package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

// GETFederatedLoginHandler starts the redirect flow for a federated provider
// named in the URL. Unknown or unconfigured providers fail before any state
// is stored.
func GETFederatedLoginHandler(ctx *middlewares.AppContext) {
	name := chi.URLParam(ctx.Request, "provider")

	provider, err := ctx.Federated.Lookup(name)
	if err != nil {
		ctx.Logger.Debug("federated login rejected", "provider", name, "error", err)
		ctx.SetJSONError(http.StatusNotFound, "unknown provider")
		return
	}

	if redirectTo := firstQueryParam(ctx.Request, "redirect", ""); redirectTo != "" {
		ctx.Sessions.SetRedirectAfterLogin(ctx, redirectTo)
	}

	authURL := provider.StartLogin(ctx, ctx.Sessions)

	ctx.Logger.Debug("redirecting to federated provider", "provider", name)
	ctx.Redirect(authURL, http.StatusFound)
}
