package middlewares

import (
	"net/http"
	"net/url"

	"tasklist-web/internal/api"
	"tasklist-web/internal/authn"
	"tasklist-web/internal/metrics"
)

// GuardPage protects page navigations. A visitor whose app session already
// carries a completed login exchange passes on that flag alone; otherwise the
// backend __session cookie is verified with the identity provider and, when
// valid, the app session is hydrated from it. Everyone else is redirected to
// the sign-in page with the original destination preserved.
func GuardPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if appCtx.Session.SignedIn(appCtx) {
			next.ServeHTTP(w, r)
			return
		}

		cookie := appCtx.requestCookie(api.SessionCookieName)
		if cookie != "" {
			token, err := appCtx.IDP.VerifySessionCookie(appCtx, cookie)
			if err == nil {
				metrics.GuardVerificationsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
				appCtx.Sessions.SetUserInfo(appCtx, &authn.UserInfo{Email: token.Email})
				next.ServeHTTP(w, r)
				return
			}

			metrics.GuardVerificationsTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
			appCtx.Logger.Debug("session cookie verification failed", "error", err)
		}

		// The sign-in page itself stays reachable, otherwise the redirect
		// below would loop.
		if r.URL.Path == appCtx.Config.Guard.SignInPath {
			next.ServeHTTP(w, r)
			return
		}

		redirectToSignIn(appCtx)
	})
}

// RequireSession protects API routes. These are requests the page itself
// makes after it has rendered, so the app session flag is trusted as is and
// failures answer 401 rather than redirecting.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !appCtx.Session.SignedIn(appCtx) {
			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// redirectToSignIn sends the visitor to the sign-in page carrying the
// destination they were after so a later login can land them back there.
func redirectToSignIn(ctx *AppContext) {
	destination := ctx.Request.URL.Path
	if ctx.Request.URL.RawQuery != "" {
		destination += "?" + ctx.Request.URL.RawQuery
	}

	ctx.Sessions.SetRedirectAfterLogin(ctx, destination)

	metrics.GuardRedirectsTotal.Inc()
	ctx.Redirect(ctx.Config.Guard.SignInPath+"?redirect="+url.QueryEscape(destination), http.StatusFound)
}
