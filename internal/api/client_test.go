package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tasklist-web/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewClient(config.BackendConfig{BaseURL: srv.URL}, logger)
}

func TestSessionLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessionLogin" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.IDToken != "id-token" || req.CSRFToken != "csrf-value" {
			t.Errorf("unexpected request %+v", req)
		}

		http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "new-session"})
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "a@example.com"})
	})

	userInfo, cookies, err := client.SessionLogin(context.Background(), LoginRequest{
		IDToken:   "id-token",
		CSRFToken: "csrf-value",
	})
	if err != nil {
		t.Fatalf("SessionLogin returned error: %v", err)
	}

	if userInfo.Email != "a@example.com" {
		t.Errorf("unexpected user info %+v", userInfo)
	}

	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || cookies[0].Value != "new-session" {
		t.Errorf("expected the backend session cookie to be relayed, got %v", cookies)
	}
}

func TestSessionLogin_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if _, _, err := client.SessionLogin(context.Background(), LoginRequest{IDToken: "t"}); err == nil {
		t.Fatal("expected error for empty login response body")
	}
}

func TestSessionLogin_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})

	if _, _, err := client.SessionLogin(context.Background(), LoginRequest{IDToken: "t"}); err == nil {
		t.Fatal("expected error for unauthorized login")
	}
}

func TestSessionLogout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessionLogout" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value != "current-session" {
			t.Error("expected the session cookie to be forwarded")
		}

		http.SetCookie(w, &http.Cookie{Name: SessionCookieName, Value: "", MaxAge: -1})
		w.WriteHeader(http.StatusOK)
	})

	cookies, err := client.SessionLogout(context.Background(), "current-session")
	if err != nil {
		t.Fatalf("SessionLogout returned error: %v", err)
	}

	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("expected a clearing cookie from the backend, got %v", cookies)
	}
}

func TestSessionLogout_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	})

	if _, err := client.SessionLogout(context.Background(), "current-session"); err == nil {
		t.Fatal("expected error for failed logout")
	}
}
