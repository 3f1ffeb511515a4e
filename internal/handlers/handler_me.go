package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// GETMeHandler returns the signed-in user's profile.
func GETMeHandler(ctx *middlewares.AppContext) {
	user, err := ctx.Session.GetMe(ctx)
	if err != nil {
		ctx.Logger.Error("failed to fetch profile", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to fetch profile")
		return
	}

	ctx.WriteJSON(http.StatusOK, user)
}

// PUTMeNameHandler renames the signed-in user and refreshes the cached
// profile so the next read reflects the change.
func PUTMeNameHandler(ctx *middlewares.AppContext) {
	var req SetNameRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.Graph().SetUserName(ctx, req.Name); err != nil {
		ctx.Logger.Error("failed to set user name", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to set name")
		return
	}

	ctx.Session.RefreshMe(ctx)
	ctx.SetJSONStatus(http.StatusOK, "ok")
}
