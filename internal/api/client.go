// Package api is the thin credentialed client for the first-party backend's
// session endpoints. The backend owns the __session cookie; this client only
// forwards it and relays any Set-Cookie directives back to the caller so the
// handlers can pass them through to the browser.
package api

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

//go:generate mockgen -source=client.go -destination=../mocks/api.go -package=mocks

// SessionCookieName is fixed by the backend's hosting setup.
const SessionCookieName = "__session"

// LoginRequest is the body of POST /sessionLogin.
type LoginRequest struct {
	IDToken   string `json:"idToken"`
	CSRFToken string `json:"csrfToken"`
}

// SessionClient performs the credential exchange against the backend.
type SessionClient interface {
	SessionLogin(ctx context.Context, req LoginRequest) (*authn.UserInfo, []*http.Cookie, error)
	SessionLogout(ctx context.Context, sessionCookie string) ([]*http.Cookie, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// SessionLogin posts the provider ID token plus the CSRF token and returns
// the minimal user info from the response body along with the cookies the
// backend wants set. An empty body is an error: the user info is the
// signed-in marker.
func (c *Client) SessionLogin(ctx context.Context, req LoginRequest) (*authn.UserInfo, []*http.Cookie, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessionLogin", bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build login request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, fmt.Errorf("session login call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("session login returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read login response: %w", err)
	}

	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("no user info in login response")
	}

	var userInfo authn.UserInfo
	if err := json.Unmarshal(raw, &userInfo); err != nil {
		return nil, nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	if userInfo.Email == "" {
		return nil, nil, fmt.Errorf("no user info in login response")
	}

	return &userInfo, resp.Cookies(), nil
}

// SessionLogout terminates the backend session. The backend clears the
// __session cookie itself; the returned cookies carry that clearing.
func (c *Client) SessionLogout(ctx context.Context, sessionCookie string) ([]*http.Cookie, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessionLogout", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build logout request: %w", err)
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	if sessionCookie != "" {
		httpReq.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionCookie})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("session logout call failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("session logout returned status %d", resp.StatusCode)
	}

	return resp.Cookies(), nil
}
