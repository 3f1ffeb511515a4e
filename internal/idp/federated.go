package idp

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"

	"tasklist-web/internal/authn"
	"tasklist-web/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// FlowStore persists the per-visitor scratch values of an in-flight federated
// sign-in (state, nonce, PKCE verifier). Implemented by the session manager.
type FlowStore interface {
	SetOauthState(ctx context.Context, state string)
	OauthState(ctx context.Context) string
	ClearOauthState(ctx context.Context)
	SetOauthNonce(ctx context.Context, nonce string)
	OauthNonce(ctx context.Context) string
	ClearOauthNonce(ctx context.Context)
	SetOauthCodeVerifier(ctx context.Context, verifier string)
	OauthCodeVerifier(ctx context.Context) string
	ClearOauthCodeVerifier(ctx context.Context)
	SetOauthProvider(ctx context.Context, provider string)
	OauthProvider(ctx context.Context) string
	ClearOauthProvider(ctx context.Context)
}

// FederatedProvider runs the interactive (redirect) sign-in flow for one of
// the supported federated providers and yields a Credential whose ID token
// feeds the same exchange pipeline as password sign-in.
type FederatedProvider struct {
	name         authn.Provider
	provider     *oidc.Provider
	oauth2Config *oauth2.Config
}

// Federated is the closed registry of configured federated providers.
// Lookups for unconfigured or unknown providers fail before any network call.
type Federated struct {
	providers map[authn.Provider]*FederatedProvider
}

func NewFederated(ctx context.Context, cfg config.FederatedConfig) (*Federated, error) {
	f := &Federated{providers: make(map[authn.Provider]*FederatedProvider)}

	for name, oc := range map[authn.Provider]*config.OIDCClientConfig{
		authn.Google:   cfg.Google,
		authn.Facebook: cfg.Facebook,
	} {
		if oc == nil {
			continue
		}

		provider, err := oidc.NewProvider(ctx, oc.IssuerURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC provider for %s: %w", name, err)
		}

		f.providers[name] = &FederatedProvider{
			name:     name,
			provider: provider,
			oauth2Config: &oauth2.Config{
				ClientID:     oc.ClientID,
				ClientSecret: oc.ClientSecret,
				Endpoint:     provider.Endpoint(),
				Scopes:       oc.Scopes,
				RedirectURL:  oc.RedirectURI,
			},
		}
	}

	return f, nil
}

// Lookup resolves a provider by name. Unknown values fail fast.
func (f *Federated) Lookup(name string) (*FederatedProvider, error) {
	provider, err := authn.ParseProvider(name)
	if err != nil {
		return nil, err
	}

	fp, ok := f.providers[provider]
	if !ok {
		return nil, fmt.Errorf("federated provider %q is not configured", name)
	}

	return fp, nil
}

func generateRandString(bytes int) string {
	if bytes <= 0 {
		bytes = 32
	}

	b := make([]byte, bytes)
	_, _ = rand.Read(b)

	return base64.URLEncoding.EncodeToString(b)
}

func generateCodeVerifier() (string, string) {
	b := make([]byte, 56)
	_, _ = rand.Read(b)

	codeVerifier := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b)
	hash := sha256.Sum256([]byte(codeVerifier))
	codeChallenge := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(hash[:])
	return codeVerifier, codeChallenge
}

// StartLogin stores the flow scratch values and returns the provider's
// authorization URL to redirect the visitor to.
func (p *FederatedProvider) StartLogin(ctx context.Context, store FlowStore) string {
	state := generateRandString(32)
	nonce := generateRandString(32)
	codeVerifier, codeChallenge := generateCodeVerifier()

	store.SetOauthState(ctx, state)
	store.SetOauthNonce(ctx, nonce)
	store.SetOauthCodeVerifier(ctx, codeVerifier)
	store.SetOauthProvider(ctx, string(p.name))

	return p.oauth2Config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

// HandleCallback validates the callback query, exchanges the code, verifies
// the ID token and returns the resulting provider credential.
func (p *FederatedProvider) HandleCallback(ctx context.Context, store FlowStore, query url.Values) (*Credential, error) {
	if errorParam := query.Get("error"); errorParam != "" {
		return nil, &Error{ErrCode: "auth/" + errorParam, Message: query.Get("error_description")}
	}

	storedState := store.OauthState(ctx)
	if storedState == "" {
		return nil, fmt.Errorf("no oauth state found in session")
	}

	if query.Get("state") != storedState {
		return nil, fmt.Errorf("invalid state parameter")
	}
	store.ClearOauthState(ctx)

	code := query.Get("code")
	if code == "" {
		return nil, fmt.Errorf("no authorization code received")
	}

	verifierCode := store.OauthCodeVerifier(ctx)
	store.ClearOauthCodeVerifier(ctx)

	token, err := p.oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(verifierCode))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, fmt.Errorf("no id_token found in oauth2 token")
	}

	verifier := p.provider.Verifier(&oidc.Config{ClientID: p.oauth2Config.ClientID})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
		Nonce string `json:"nonce"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to extract claims from ID token: %w", err)
	}

	if claims.Nonce != store.OauthNonce(ctx) {
		return nil, fmt.Errorf("nonce in ID token is invalid")
	}
	store.ClearOauthNonce(ctx)
	store.ClearOauthProvider(ctx)

	if idToken.Subject == "" {
		return nil, &Error{ErrCode: "auth/internal-error", Message: "no user in provider response"}
	}

	return &Credential{
		IDToken:      rawIDToken,
		RefreshToken: token.RefreshToken,
		UserID:       idToken.Subject,
		Email:        claims.Email,
	}, nil
}
