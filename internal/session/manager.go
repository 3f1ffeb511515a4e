package session

import (
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"net/http"

	"tasklist-web/internal/authn"
	"tasklist-web/internal/config"
	"tasklist-web/internal/graph"
	"tasklist-web/internal/metrics"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
	"github.com/redis/go-redis/v9"
)

type sessionKey string

const (
	keyUserInfo           sessionKey = "user_info"
	keyCurrentUser        sessionKey = "current_user"
	keyCSRFToken          sessionKey = "csrf_token"
	keyRedirectAfterLogin sessionKey = "redirect_after_login"
	keyOauthState         sessionKey = "oauth_state"
	keyOauthNonce         sessionKey = "oauth_nonce"
	keyOauthCodeVerifier  sessionKey = "oauth_code_verifier"
	keyOauthProvider      sessionKey = "oauth_provider"
)

// Manager is the per-visitor session store for the frontend's own app
// session cookie. It persists the composable state between requests and the
// scratch values of in-flight federated sign-ins. It implements Store and
// idp.FlowStore.
type Manager struct {
	*scs.SessionManager
}

func NewManager(logger *slog.Logger, cfg *config.Config) (*Manager, error) {
	gob.Register(&authn.UserInfo{})
	gob.Register(&graph.User{})

	sessionManager := scs.New()

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		var client *redis.Client

		if cfg.Redis.Sentinel != nil {
			logger.Info("connecting to redis via sentinel",
				"master", cfg.Redis.Sentinel.MasterName,
				"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

			client = redis.NewFailoverClient(&redis.FailoverOptions{
				MasterName:       cfg.Redis.Sentinel.MasterName,
				SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
				SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
				Password:         cfg.Redis.Password,
				DB:               cfg.Redis.SessionIndex,
				MinIdleConns:     2,
			})
		} else {
			client = redis.NewClient(&redis.Options{
				Addr:         cfg.Redis.Address,
				Password:     cfg.Redis.Password,
				DB:           cfg.Redis.SessionIndex,
				MinIdleConns: 2,
			})
		}

		ctx := context.Background()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		collector := redisprometheus.NewCollector(metrics.Namespace, "sessions", client)
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis sessions collector: already registered", "error", err)
		}

		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.Lifetime = cfg.Sessions.FixedTimeout

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &Manager{SessionManager: sessionManager}, nil
}

func (m *Manager) LoadAndSave(next http.Handler) http.Handler {
	return m.SessionManager.LoadAndSave(next)
}

func (m *Manager) UserInfo(ctx context.Context) *authn.UserInfo {
	data := m.Get(ctx, string(keyUserInfo))
	if data == nil {
		return nil
	}

	if info, ok := data.(*authn.UserInfo); ok {
		return info
	}

	return nil
}

func (m *Manager) SetUserInfo(ctx context.Context, info *authn.UserInfo) {
	if info == nil {
		m.Remove(ctx, string(keyUserInfo))
		return
	}

	m.Put(ctx, string(keyUserInfo), info)
}

func (m *Manager) CurrentUser(ctx context.Context) *graph.User {
	data := m.Get(ctx, string(keyCurrentUser))
	if data == nil {
		return nil
	}

	if user, ok := data.(*graph.User); ok {
		return user
	}

	return nil
}

func (m *Manager) SetCurrentUser(ctx context.Context, user *graph.User) {
	if user == nil {
		m.Remove(ctx, string(keyCurrentUser))
		return
	}

	m.Put(ctx, string(keyCurrentUser), user)
}

func (m *Manager) CSRFToken(ctx context.Context) string {
	return m.GetString(ctx, string(keyCSRFToken))
}

func (m *Manager) SetCSRFToken(ctx context.Context, token string) {
	m.Put(ctx, string(keyCSRFToken), token)
}

func (m *Manager) RedirectAfterLogin(ctx context.Context) string {
	return m.GetString(ctx, string(keyRedirectAfterLogin))
}

func (m *Manager) SetRedirectAfterLogin(ctx context.Context, path string) {
	m.Put(ctx, string(keyRedirectAfterLogin), path)
}

func (m *Manager) ClearRedirectAfterLogin(ctx context.Context) {
	m.Remove(ctx, string(keyRedirectAfterLogin))
}

func (m *Manager) SetOauthState(ctx context.Context, state string) {
	m.Put(ctx, string(keyOauthState), state)
}

func (m *Manager) OauthState(ctx context.Context) string {
	return m.GetString(ctx, string(keyOauthState))
}

func (m *Manager) ClearOauthState(ctx context.Context) {
	m.Remove(ctx, string(keyOauthState))
}

func (m *Manager) SetOauthNonce(ctx context.Context, nonce string) {
	m.Put(ctx, string(keyOauthNonce), nonce)
}

func (m *Manager) OauthNonce(ctx context.Context) string {
	return m.GetString(ctx, string(keyOauthNonce))
}

func (m *Manager) ClearOauthNonce(ctx context.Context) {
	m.Remove(ctx, string(keyOauthNonce))
}

func (m *Manager) SetOauthCodeVerifier(ctx context.Context, verifier string) {
	m.Put(ctx, string(keyOauthCodeVerifier), verifier)
}

func (m *Manager) OauthCodeVerifier(ctx context.Context) string {
	return m.GetString(ctx, string(keyOauthCodeVerifier))
}

func (m *Manager) ClearOauthCodeVerifier(ctx context.Context) {
	m.Remove(ctx, string(keyOauthCodeVerifier))
}

func (m *Manager) SetOauthProvider(ctx context.Context, provider string) {
	m.Put(ctx, string(keyOauthProvider), provider)
}

func (m *Manager) OauthProvider(ctx context.Context) string {
	return m.GetString(ctx, string(keyOauthProvider))
}

func (m *Manager) ClearOauthProvider(ctx context.Context) {
	m.Remove(ctx, string(keyOauthProvider))
}

// EndVisit destroys the visitor's app session entirely, leaving any
// backend-owned cookies alone.
func (m *Manager) EndVisit(ctx context.Context) error {
	return m.Destroy(ctx)
}
