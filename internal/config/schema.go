package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	IDP       IDPConfig       `yaml:"idp"`
	Backend   BackendConfig   `yaml:"backend"`
	GraphQL   GraphQLConfig   `yaml:"graphql"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Sessions  SessionConfig   `yaml:"sessions"`
	Guard     GuardConfig     `yaml:"guard"`
	Redis     *RedisConfig    `yaml:"redis"`
	Web       WebConfig       `yaml:"web"`
	Federated FederatedConfig `yaml:"federated"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// IDPConfig points at the identity provider's REST surface. The API key is
// appended to every call the way the provider's own SDKs do it.
type IDPConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
}

// BackendConfig locates the first-party backend that owns the __session
// cookie, i.e. the host of /sessionLogin and /sessionLogout.
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
}

type GraphQLConfig struct {
	URL string `yaml:"url"`
}

// FederatedConfig holds the OIDC client settings for the closed set of
// federated sign-in providers. A nil entry disables that provider.
type FederatedConfig struct {
	Google   *OIDCClientConfig `yaml:"google"`
	Facebook *OIDCClientConfig `yaml:"facebook"`
}

type OIDCClientConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCScopes = []string{"openid", "profile", "email"}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// SessionConfig covers the frontend's own per-visitor session, not the
// backend's __session cookie (which stays opaque and backend-owned).
type SessionConfig struct {
	Store          string        `yaml:"store"`
	FixedTimeout   time.Duration `yaml:"fixed_timeout"`
	Name           string        `yaml:"name"`
	Secure         bool          `yaml:"secure"`
	CSRFCookieName string        `yaml:"csrf_cookie_name"`
}

var DefaultSessionConfig = SessionConfig{
	Store:          "memory",
	FixedTimeout:   24 * time.Hour,
	Name:           "app_session",
	Secure:         true,
	CSRFCookieName: "csrf-token",
}

type GuardConfig struct {
	SignInPath string `yaml:"sign_in_path"`
}

var DefaultGuardConfig = GuardConfig{
	SignInPath: "/sign-in",
}

type RedisConfig struct {
	Address      string               `yaml:"address"`
	Username     string               `yaml:"username"`
	Password     string               `yaml:"password"`
	Sentinel     *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex int                  `yaml:"session_index"`
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}

type WebConfig struct {
	DistDir string `yaml:"dist_dir"`
}

var DefaultWebConfig = WebConfig{
	DistDir: "web/dist",
}
