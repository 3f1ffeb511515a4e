package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvIDPAPIKey               = "TASKLIST_IDP_API_KEY"
	EnvIDPEndpoint             = "TASKLIST_IDP_ENDPOINT"
	EnvBackendBaseURL          = "TASKLIST_BACKEND_BASE_URL"
	EnvGraphQLURL              = "TASKLIST_GRAPHQL_URL"
	EnvRedisPassword           = "TASKLIST_REDIS_PASSWORD"
	EnvRedisUsername           = "TASKLIST_REDIS_USERNAME"
	EnvRedisSentinelUsername   = "TASKLIST_REDIS_SENTINEL_USERNAME"
	EnvRedisSentinelPassword   = "TASKLIST_REDIS_SENTINEL_PASSWORD"
	EnvFederatedGoogleSecret   = "TASKLIST_FEDERATED_GOOGLE_CLIENT_SECRET"
	EnvFederatedFacebookSecret = "TASKLIST_FEDERATED_FACEBOOK_CLIENT_SECRET"
)

func applyEnvironmentOverrides(config *Config) {
	if apiKey := os.Getenv(EnvIDPAPIKey); apiKey != "" {
		config.IDP.APIKey = apiKey
	}

	if endpoint := os.Getenv(EnvIDPEndpoint); endpoint != "" {
		config.IDP.Endpoint = endpoint
	}

	if baseURL := os.Getenv(EnvBackendBaseURL); baseURL != "" {
		config.Backend.BaseURL = baseURL
	}

	if graphqlURL := os.Getenv(EnvGraphQLURL); graphqlURL != "" {
		config.GraphQL.URL = graphqlURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if sentinelUsername := os.Getenv(EnvRedisSentinelUsername); sentinelUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelUsername = sentinelUsername
	}

	if sentinelPassword := os.Getenv(EnvRedisSentinelPassword); sentinelPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		if config.Redis.Sentinel == nil {
			config.Redis.Sentinel = &RedisSentinelConfig{}
		}
		config.Redis.Sentinel.SentinelPassword = sentinelPassword
	}

	if secret := os.Getenv(EnvFederatedGoogleSecret); secret != "" && config.Federated.Google != nil {
		config.Federated.Google.ClientSecret = secret
	}

	if secret := os.Getenv(EnvFederatedFacebookSecret); secret != "" && config.Federated.Facebook != nil {
		config.Federated.Facebook.ClientSecret = secret
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateIDPConfig()
	if err != nil {
		return err
	}

	err = config.validateBackendConfig()
	if err != nil {
		return err
	}

	err = config.validateGraphQLConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateGuardConfig()
	if err != nil {
		return err
	}

	err = config.validateFederatedConfig()
	if err != nil {
		return err
	}

	if config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	if config.Web.DistDir == "" {
		config.Web.DistDir = DefaultWebConfig.DistDir
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.ExternalURL == "" {
		return fmt.Errorf("server.external_url is required")
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateIDPConfig() error {
	if err := validateURL(c.IDP.Endpoint, "idp.endpoint"); err != nil {
		return err
	}

	if c.IDP.APIKey == "" {
		return fmt.Errorf("idp.api_key is required")
	}

	return nil
}

func (c *Config) validateBackendConfig() error {
	return validateURL(c.Backend.BaseURL, "backend.base_url")
}

func (c *Config) validateGraphQLConfig() error {
	return validateURL(c.GraphQL.URL, "graphql.url")
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.CSRFCookieName == "" {
		c.Sessions.CSRFCookieName = DefaultSessionConfig.CSRFCookieName
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateGuardConfig() error {
	if c.Guard.SignInPath == "" {
		c.Guard.SignInPath = DefaultGuardConfig.SignInPath
	}

	if c.Guard.SignInPath[0] != '/' {
		return fmt.Errorf("guard.sign_in_path must be an absolute path, got %q", c.Guard.SignInPath)
	}

	return nil
}

func (c *Config) validateFederatedConfig() error {
	for name, oc := range map[string]*OIDCClientConfig{
		"google":   c.Federated.Google,
		"facebook": c.Federated.Facebook,
	} {
		if oc == nil {
			continue
		}

		if oc.ClientID == "" {
			return fmt.Errorf("federated.%s.client_id is required", name)
		}
		if oc.ClientSecret == "" {
			return fmt.Errorf("federated.%s.client_secret is required", name)
		}
		if err := validateURL(oc.IssuerURL, "federated."+name+".issuer_url"); err != nil {
			return err
		}
		if err := validateURL(oc.RedirectURI, "federated."+name+".redirect_url"); err != nil {
			return err
		}
		if len(oc.Scopes) == 0 {
			oc.Scopes = DefaultOIDCScopes
		}
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is required when sessions.store is 'redis'")
	}

	if c.Redis.Sentinel != nil {
		if c.Redis.Sentinel.MasterName == "" {
			return fmt.Errorf("redis.sentinel.master_name is required")
		}
		if len(c.Redis.Sentinel.SentinelAddresses) == 0 {
			return fmt.Errorf("redis.sentinel.addresses is required")
		}
		return nil
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}

	return nil
}

func validateURL(raw, field string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", field)
	}

	return nil
}
