package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"tasklist-web/internal/api"
	"tasklist-web/internal/config"
	"tasklist-web/internal/graph"
	"tasklist-web/internal/idp"
	"tasklist-web/internal/session"
)

// AppContext carries the request-scoped collaborators every handler needs.
// Session is built per request from the visitor's cookies; everything else is
// shared process state.
type AppContext struct {
	context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Sessions  *session.Manager
	IDP       idp.Provider
	Federated *idp.Federated
	API       api.SessionClient
	Graph     *graph.Service
	Session   *session.Session

	Request  *http.Request
	Response http.ResponseWriter

	cookiesWritten int
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:   r.Context(),
				Config:    baseCtx.Config,
				Logger:    baseCtx.Logger,
				Sessions:  baseCtx.Sessions,
				IDP:       baseCtx.IDP,
				Federated: baseCtx.Federated,
				API:       baseCtx.API,
				Graph:     baseCtx.Graph,
				Request:   r,
				Response:  w,
			}

			visitor, err := session.New(r.Context(), session.Options{
				Logger: baseCtx.Logger,
				IDP:    baseCtx.IDP,
				API:    baseCtx.API,
				Store:  requestCtx.sessionStore(),
				NewGraphClient: func(cookie func() string) graph.Client {
					return baseCtx.Graph.WithCookieSource(cookie)
				},
				Cookies:        requestCtx.requestCookie,
				CSRFCookieName: baseCtx.Config.Sessions.CSRFCookieName,
			})
			if err != nil {
				baseCtx.Logger.Error("failed to build visitor session", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			requestCtx.Session = visitor

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (ctx *AppContext) sessionStore() session.Store {
	return ctx.Sessions
}

func (ctx *AppContext) requestCookie(name string) string {
	cookie, err := ctx.Request.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

type AppHandler func(*AppContext)

// Handler converts an AppHandler to an http.Handler
func (ctx *AppContext) Handler(h AppHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	})
}

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		h(appCtx)
	}
}

// RequestWithAppContext returns r carrying appCtx the way
// AppContextMiddleware attaches it. Intended for tests that call middleware
// directly.
func RequestWithAppContext(r *http.Request, appCtx *AppContext) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), appContextKey, appCtx))
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

func GetConfig(r *http.Request) *config.Config {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Config
	}

	return nil
}

// FlushSessionCookies relays any Set-Cookie directives the composable has
// produced so far. WriteJSON and Redirect call it; it must run before the
// response header is written.
func (ctx *AppContext) FlushSessionCookies() {
	if ctx.Session == nil {
		return
	}

	pending := ctx.Session.PendingCookies()
	for ; ctx.cookiesWritten < len(pending); ctx.cookiesWritten++ {
		http.SetCookie(ctx.Response, pending[ctx.cookiesWritten])
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	ctx.FlushSessionCookies()
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.FlushSessionCookies()
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
