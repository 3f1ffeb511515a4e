package idp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tasklist-web/internal/authn"
	"tasklist-web/internal/config"

	"github.com/google/uuid"
)

// Client talks to the identity provider's REST surface. All state lives with
// the provider; the client itself is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.IDPConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type credentialResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
}

func (r *credentialResponse) toCredential() (*Credential, error) {
	if r.IDToken == "" || r.LocalID == "" {
		return nil, &Error{ErrCode: "auth/internal-error", Message: "no user in provider response"}
	}

	return &Credential{
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
		UserID:       r.LocalID,
		Email:        r.Email,
	}, nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Credential, error) {
	var resp credentialResponse
	err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp.toCredential()
}

func (c *Client) CreateUser(ctx context.Context, email, password string) (*Credential, error) {
	var resp credentialResponse
	err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return resp.toCredential()
}

func (c *Client) SendPasswordResetEmail(ctx context.Context, email string) error {
	return c.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

// SignOut terminates the provider-side session for an issued credential. The
// backend cookie is the durable session, so this runs right after every
// successful exchange.
func (c *Client) SignOut(ctx context.Context, cred *Credential) error {
	if cred == nil || cred.RefreshToken == "" {
		return nil
	}

	return c.post(ctx, "accounts:signOut", map[string]any{
		"refreshToken": cred.RefreshToken,
	}, nil)
}

func (c *Client) VerifySessionCookie(ctx context.Context, sessionCookie string) (*Token, error) {
	var resp struct {
		LocalID        string `json:"localId"`
		Email          string `json:"email"`
		SignInProvider string `json:"signInProvider"`
		AuthTime       int64  `json:"authTime"`
	}

	err := c.post(ctx, "sessionCookies:verify", map[string]any{
		"sessionCookie": sessionCookie,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.LocalID == "" {
		return nil, &Error{ErrCode: "auth/invalid-session-cookie", Message: "no user in verification response"}
	}

	provider, ok := toAuthProvider(resp.SignInProvider)
	if !ok {
		return nil, fmt.Errorf("no auth provider found for %q", resp.SignInProvider)
	}

	return &Token{
		UserID:   resp.LocalID,
		Email:    resp.Email,
		Provider: provider,
		AuthTime: time.Unix(resp.AuthTime, 0),
	}, nil
}

func toAuthProvider(signInProvider string) (authn.Provider, bool) {
	switch signInProvider {
	case "google.com":
		return authn.Google, true
	case "password":
		return authn.EmailAndPass, true
	case "facebook.com":
		return authn.Facebook, true
	default:
		return authn.UnknownProvider, false
	}
}

func (c *Client) post(ctx context.Context, method string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.endpoint, method, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider %s call failed: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.asProviderError(method, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}

	return nil
}

// asProviderError decodes the provider's error envelope into an *Error with
// a canonical code, falling back to a generic code on undecodable bodies.
func (c *Client) asProviderError(method string, status int, raw []byte) error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error.Message == "" {
		c.logger.Warn("provider returned an undecodable error body", "method", method, "status", status)
		return &Error{ErrCode: "auth/internal-error", Message: fmt.Sprintf("provider returned status %d", status)}
	}

	return &Error{
		ErrCode: normalizeCode(envelope.Error.Message),
		Message: envelope.Error.Message,
	}
}
