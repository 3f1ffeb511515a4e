package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// GETAuthStatusHandler reports whether the visitor is signed in, with the
// profile when one can be fetched. It never errors on a signed-out visitor;
// the page uses it to decide what to render.
func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	response := AuthStatusResponse{
		Authenticated: ctx.Session.SignedIn(ctx),
	}

	user, err := ctx.Session.GetMaybeMe(ctx)
	if err != nil {
		ctx.Logger.Warn("failed to fetch profile for auth status", "error", err)
		ctx.WriteJSON(http.StatusOK, response)
		return
	}

	response.User = user
	ctx.WriteJSON(http.StatusOK, response)
}
