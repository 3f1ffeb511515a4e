package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"
	"tasklist-web/internal/version"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"version": version.Version,
	})
}
