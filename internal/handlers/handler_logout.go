package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
)

// POSTLogoutHandler terminates the backend session, relays its clearing
// cookies, and sends the visitor back to the sign-in page. When the backend
// call fails nothing is cleared: the visitor still holds a live session.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	if err := ctx.Session.LogOut(ctx); err != nil {
		ctx.Logger.Error("failed to log out", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "Failed to logout")
		return
	}

	ctx.Logger.Info("user logged out")

	ctx.Redirect(ctx.Config.Guard.SignInPath, http.StatusFound)
}
