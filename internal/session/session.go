// Package session implements the per-visitor auth lifecycle: signing in and
// out, the credential exchange against the backend, and the cached profile of
// the signed-in user. A Session reconciles three sources of truth that can
// disagree at any moment: the identity provider, the backend's __session
// cookie, and the profile served by the GraphQL API.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tasklist-web/internal/api"
	"tasklist-web/internal/authn"
	"tasklist-web/internal/graph"
	"tasklist-web/internal/idp"
	"tasklist-web/internal/metrics"

	"golang.org/x/sync/singleflight"
)

// CookieSource reads a cookie value from the visitor's current request. An
// empty string means the cookie is absent.
type CookieSource func(name string) string

// Options wires a Session to its collaborators. All fields are required
// except Logger, which defaults to slog.Default.
type Options struct {
	Logger *slog.Logger
	IDP    idp.Provider
	API    api.SessionClient
	Store  Store
	// NewGraphClient binds the GraphQL client to a live cookie source so
	// profile fetches immediately after a login exchange use the fresh
	// __session cookie rather than the one the request arrived with.
	NewGraphClient func(cookie func() string) graph.Client
	Cookies        CookieSource
	CSRFCookieName string
}

// Session is the auth lifecycle for one visitor. It is not safe for use
// across visitors; build one per request from the visitor's session state.
type Session struct {
	logger  *slog.Logger
	idp     idp.Provider
	api     api.SessionClient
	store   Store
	graph   graph.Client
	cookies CookieSource

	// pending holds Set-Cookie directives produced during this request
	// (login exchange, logout, CSRF mint) for the handler to relay.
	pending []*http.Cookie

	group singleflight.Group
}

// New builds the visitor's Session and establishes the CSRF double-submit
// token: reused from the visitor's cookie when present, minted otherwise.
func New(ctx context.Context, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		logger:  logger,
		idp:     opts.IDP,
		api:     opts.API,
		store:   opts.Store,
		cookies: opts.Cookies,
	}
	s.graph = opts.NewGraphClient(func() string { return s.SessionCookie() })

	csrf := opts.Cookies(opts.CSRFCookieName)
	if csrf == "" {
		minted, err := randomToken()
		if err != nil {
			return nil, fmt.Errorf("failed to mint csrf token: %w", err)
		}
		csrf = minted

		s.pending = append(s.pending, &http.Cookie{
			Name:     opts.CSRFCookieName,
			Value:    csrf,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		})
	}
	s.store.SetCSRFToken(ctx, csrf)

	return s, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Graph returns the GraphQL client bound to this visitor's session cookie.
func (s *Session) Graph() graph.Client {
	return s.graph
}

// PendingCookies returns the Set-Cookie directives accumulated during this
// request, in the order they were produced.
func (s *Session) PendingCookies() []*http.Cookie {
	return s.pending
}

// SessionCookie returns the backend __session cookie value currently in
// effect: a cookie set during this request wins over the one the request
// arrived with.
func (s *Session) SessionCookie() string {
	for i := len(s.pending) - 1; i >= 0; i-- {
		if s.pending[i].Name == api.SessionCookieName {
			return s.pending[i].Value
		}
	}
	return s.cookies(api.SessionCookieName)
}

// SignedIn reports whether the visitor holds a completed login exchange.
func (s *Session) SignedIn(ctx context.Context) bool {
	return s.store.UserInfo(ctx) != nil
}

// UserInfo returns the minimal identity snapshot, or nil when signed out.
func (s *Session) UserInfo(ctx context.Context) *authn.UserInfo {
	return s.store.UserInfo(ctx)
}

// SignIn authenticates an email and password and completes the credential
// exchange. Failures are always an *authn.Error.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	cred, err := s.idp.SignInWithPassword(ctx, email, password)
	if err != nil {
		return s.failFlow(metrics.FlowSignIn, err)
	}

	if err := s.exchange(ctx, cred); err != nil {
		return s.failFlow(metrics.FlowSignIn, err)
	}

	metrics.AuthFlowsTotal.WithLabelValues(metrics.FlowSignIn, metrics.OutcomeSuccess).Inc()
	return nil
}

// CreateAccount registers a new email-and-password account, completes the
// credential exchange, and records the display name. The name write is best
// effort: the account exists and the visitor is signed in either way.
func (s *Session) CreateAccount(ctx context.Context, email, password, name string) error {
	cred, err := s.idp.CreateUser(ctx, email, password)
	if err != nil {
		return s.failFlow(metrics.FlowCreateAccount, err)
	}

	if err := s.exchange(ctx, cred); err != nil {
		return s.failFlow(metrics.FlowCreateAccount, err)
	}

	if name != "" {
		if err := s.graph.SetUserName(ctx, name); err != nil {
			s.logger.Warn("failed to set display name for new account", "error", err)
		} else {
			s.RefreshMe(ctx)
		}
	}

	metrics.AuthFlowsTotal.WithLabelValues(metrics.FlowCreateAccount, metrics.OutcomeSuccess).Inc()
	return nil
}

// SignInWithCredential completes the exchange for a credential obtained out
// of band, typically from a federated OAuth callback.
func (s *Session) SignInWithCredential(ctx context.Context, cred *idp.Credential) error {
	if err := s.exchange(ctx, cred); err != nil {
		return s.failFlow(metrics.FlowFederated, err)
	}

	metrics.AuthFlowsTotal.WithLabelValues(metrics.FlowFederated, metrics.OutcomeSuccess).Inc()
	return nil
}

// exchange trades a provider credential for a backend session. The provider
// session is terminated afterwards regardless: the provider is a token
// issuer, not a session holder, and a lingering provider session after a
// failed exchange would let the two disagree about who is signed in.
func (s *Session) exchange(ctx context.Context, cred *idp.Credential) error {
	if cred == nil {
		return fmt.Errorf("no credential to exchange")
	}

	userInfo, cookies, loginErr := s.api.SessionLogin(ctx, api.LoginRequest{
		IDToken:   cred.IDToken,
		CSRFToken: s.store.CSRFToken(ctx),
	})

	if signOutErr := s.idp.SignOut(ctx, cred); signOutErr != nil {
		if loginErr == nil {
			return fmt.Errorf("failed to end identity provider session: %w", signOutErr)
		}
		s.logger.Warn("failed to end identity provider session after failed exchange", "error", signOutErr)
	}

	if loginErr != nil {
		return fmt.Errorf("credential exchange failed: %w", loginErr)
	}

	s.pending = append(s.pending, cookies...)
	s.store.SetUserInfo(ctx, userInfo)
	s.RefreshMe(ctx)

	return nil
}

func (s *Session) failFlow(flow string, err error) *authn.Error {
	authErr := authn.WrapError(err)

	metrics.AuthFlowsTotal.WithLabelValues(flow, metrics.OutcomeFailure).Inc()
	metrics.AuthErrorsTotal.WithLabelValues(authErr.Type.String()).Inc()
	s.logger.Debug("auth flow failed", "flow", flow, "type", authErr.Type.String(), "error", err)

	return authErr
}

// LogOut terminates the backend session and clears the local state. When the
// backend call fails the local state is left intact so the visitor still
// appears signed in, matching the session that actually remains.
func (s *Session) LogOut(ctx context.Context) error {
	cookies, err := s.api.SessionLogout(ctx, s.SessionCookie())
	if err != nil {
		metrics.AuthFlowsTotal.WithLabelValues(metrics.FlowLogout, metrics.OutcomeFailure).Inc()
		return fmt.Errorf("logout failed: %w", err)
	}

	s.pending = append(s.pending, cookies...)
	s.store.SetUserInfo(ctx, nil)
	s.RefreshMe(ctx)

	metrics.AuthFlowsTotal.WithLabelValues(metrics.FlowLogout, metrics.OutcomeSuccess).Inc()
	return nil
}

// GetMe returns the signed-in user's profile, fetching it on first use and
// serving the cached copy afterwards. Concurrent first fetches coalesce into
// a single GraphQL request.
func (s *Session) GetMe(ctx context.Context) (*graph.User, error) {
	if user := s.store.CurrentUser(ctx); user != nil {
		metrics.ProfileFetchDuration.WithLabelValues("cache").Observe(0)
		return user, nil
	}

	result, err, _ := s.group.Do("me", func() (any, error) {
		start := time.Now()

		user, err := s.graph.Me(ctx)
		if err != nil {
			return nil, err
		}

		metrics.ProfileFetchDuration.WithLabelValues("fetch").Observe(time.Since(start).Seconds())
		s.store.SetCurrentUser(ctx, user)
		return user, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	return result.(*graph.User), nil
}

// GetMaybeMe is GetMe for callers that tolerate a signed-out visitor: it
// returns nil without touching the network when no login exchange has
// completed.
func (s *Session) GetMaybeMe(ctx context.Context) (*graph.User, error) {
	if !s.SignedIn(ctx) {
		return nil, nil
	}
	return s.GetMe(ctx)
}

// RefreshMe re-fetches the cached profile. A fetch failure drops the stale
// copy rather than keeping it: the next GetMe retries, and serving a profile
// that may belong to a previous account is worse than serving none.
func (s *Session) RefreshMe(ctx context.Context) {
	if !s.SignedIn(ctx) {
		s.store.SetCurrentUser(ctx, nil)
		return
	}

	user, err := s.graph.Me(ctx)
	if err != nil {
		s.logger.Warn("profile refresh failed, dropping cached profile", "error", err)
		metrics.ProfileRefreshDropsTotal.Inc()
		s.store.SetCurrentUser(ctx, nil)
		return
	}

	s.store.SetCurrentUser(ctx, user)
}

// SendPasswordResetEmailFor asks the provider to email a reset link.
// Provider errors surface as *authn.Error like any other flow.
func (s *Session) SendPasswordResetEmailFor(ctx context.Context, email string) error {
	if err := s.idp.SendPasswordResetEmail(ctx, email); err != nil {
		authErr := authn.WrapError(err)
		metrics.AuthErrorsTotal.WithLabelValues(authErr.Type.String()).Inc()
		return authErr
	}
	return nil
}
