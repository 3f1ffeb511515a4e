package idp

import (
	"context"
	"net/url"
	"testing"

	"tasklist-web/internal/authn"

	"golang.org/x/oauth2"
)

type fakeFlowStore struct {
	state    string
	nonce    string
	verifier string
	provider string
}

func (s *fakeFlowStore) SetOauthState(_ context.Context, v string)        { s.state = v }
func (s *fakeFlowStore) OauthState(_ context.Context) string              { return s.state }
func (s *fakeFlowStore) ClearOauthState(_ context.Context)                { s.state = "" }
func (s *fakeFlowStore) SetOauthNonce(_ context.Context, v string)        { s.nonce = v }
func (s *fakeFlowStore) OauthNonce(_ context.Context) string              { return s.nonce }
func (s *fakeFlowStore) ClearOauthNonce(_ context.Context)                { s.nonce = "" }
func (s *fakeFlowStore) SetOauthCodeVerifier(_ context.Context, v string) { s.verifier = v }
func (s *fakeFlowStore) OauthCodeVerifier(_ context.Context) string       { return s.verifier }
func (s *fakeFlowStore) ClearOauthCodeVerifier(_ context.Context)         { s.verifier = "" }
func (s *fakeFlowStore) SetOauthProvider(_ context.Context, v string)     { s.provider = v }
func (s *fakeFlowStore) OauthProvider(_ context.Context) string           { return s.provider }
func (s *fakeFlowStore) ClearOauthProvider(_ context.Context)             { s.provider = "" }

func testFederatedProvider() *FederatedProvider {
	return &FederatedProvider{
		name: authn.Google,
		oauth2Config: &oauth2.Config{
			ClientID:    "client-id",
			RedirectURL: "https://tasks.example.com/api/auth/federated/callback",
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://idp.example.com/authorize",
				TokenURL: "https://idp.example.com/token",
			},
		},
	}
}

func TestLookup_UnknownProviderFailsFast(t *testing.T) {
	f := &Federated{providers: map[authn.Provider]*FederatedProvider{}}

	if _, err := f.Lookup("github"); err == nil {
		t.Error("expected error for unknown provider name")
	}

	// Known name but not configured.
	if _, err := f.Lookup("google"); err == nil {
		t.Error("expected error for unconfigured provider")
	}
}

func TestStartLogin_StoresFlowScratch(t *testing.T) {
	p := testFederatedProvider()
	store := &fakeFlowStore{}

	authURL := p.StartLogin(context.Background(), store)

	if store.state == "" || store.nonce == "" || store.verifier == "" {
		t.Error("expected state, nonce, and code verifier to be stored")
	}
	if store.provider != "google" {
		t.Errorf("expected provider name stored, got %q", store.provider)
	}

	u, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("StartLogin returned unparsable URL: %v", err)
	}

	q := u.Query()
	if q.Get("state") != store.state {
		t.Error("auth URL state does not match stored state")
	}
	if q.Get("nonce") != store.nonce {
		t.Error("auth URL nonce does not match stored nonce")
	}
	if q.Get("code_challenge_method") != "S256" {
		t.Errorf("expected PKCE S256, got %q", q.Get("code_challenge_method"))
	}
}

func TestHandleCallback_ProviderError(t *testing.T) {
	p := testFederatedProvider()
	store := &fakeFlowStore{state: "stored"}

	q := url.Values{"error": {"access_denied"}, "error_description": {"user declined"}}
	_, err := p.HandleCallback(context.Background(), store, q)
	if err == nil {
		t.Fatal("expected error")
	}

	if authn.WrapError(err).Type != authn.ErrorGeneric {
		t.Error("provider callback errors should map to the generic type")
	}
}

func TestHandleCallback_MissingState(t *testing.T) {
	p := testFederatedProvider()

	_, err := p.HandleCallback(context.Background(), &fakeFlowStore{}, url.Values{})
	if err == nil {
		t.Fatal("expected error when no state is stored")
	}
}

func TestHandleCallback_StateMismatch(t *testing.T) {
	p := testFederatedProvider()
	store := &fakeFlowStore{state: "stored"}

	q := url.Values{"state": {"forged"}, "code": {"abc"}}
	if _, err := p.HandleCallback(context.Background(), store, q); err == nil {
		t.Fatal("expected error for state mismatch")
	}
}

func TestHandleCallback_MissingCode(t *testing.T) {
	p := testFederatedProvider()
	store := &fakeFlowStore{state: "stored"}

	q := url.Values{"state": {"stored"}}
	if _, err := p.HandleCallback(context.Background(), store, q); err == nil {
		t.Fatal("expected error when no code is present")
	}
	if store.state != "" {
		t.Error("state should be cleared once matched")
	}
}
