package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklist-web/internal/api"
	"tasklist-web/internal/authn"
	"tasklist-web/internal/config"
	"tasklist-web/internal/graph"
	"tasklist-web/internal/idp"
	"tasklist-web/internal/middlewares"
	"tasklist-web/internal/mocks"
	"tasklist-web/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// TestContext holds everything needed for handler and middleware tests: a
// real in-memory visitor session plus mocks for every network collaborator.
type TestContext struct {
	AppContext     *middlewares.AppContext
	Request        *http.Request
	Response       *httptest.ResponseRecorder
	MockController *gomock.Controller
	MockIDP        *mocks.MockProvider
	MockAPI        *mocks.MockSessionClient
	MockGraph      *mocks.MockClient
	Sessions       *session.Manager
	LogHandler     *TestLogHandler
}

// TestConfig returns a config with every default applied, the way LoadConfig
// leaves a minimal file.
func TestConfig() *config.Config {
	return &config.Config{
		Server:   config.DefaultServerConfig,
		Log:      config.DefaultLogConfig,
		CORS:     config.DefaultCORSConfig,
		Sessions: config.DefaultSessionConfig,
		Guard:    config.DefaultGuardConfig,
		Web:      config.DefaultWebConfig,
	}
}

// NewTestContextWithURL creates a complete test setup with sensible defaults.
func NewTestContextWithURL(t *testing.T, method, url string) *TestContext {
	t.Helper()

	cfg := TestConfig()

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	ctrl := gomock.NewController(t)

	mockIDP := mocks.NewMockProvider(ctrl)
	mockAPI := mocks.NewMockSessionClient(ctrl)
	mockGraph := mocks.NewMockClient(ctrl)

	sessions, err := session.NewManager(logger, cfg)
	if err != nil {
		t.Fatalf("failed to build session manager: %v", err)
	}

	req := httptest.NewRequest(method, url, nil)

	// Load an empty visitor session the way LoadAndSave would.
	ctx, err := sessions.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load visitor session: %v", err)
	}
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()

	// An empty registry: federated lookups fail fast without any network.
	federated, err := idp.NewFederated(ctx, config.FederatedConfig{})
	if err != nil {
		t.Fatalf("failed to build federated registry: %v", err)
	}

	appCtx := &middlewares.AppContext{
		Context:   ctx,
		Config:    cfg,
		Logger:    logger,
		Sessions:  sessions,
		IDP:       mockIDP,
		Federated: federated,
		API:       mockAPI,
		Request:   req,
		Response:  rr,
	}

	visitor, err := session.New(ctx, session.Options{
		Logger: logger,
		IDP:    mockIDP,
		API:    mockAPI,
		Store:  sessions,
		NewGraphClient: func(func() string) graph.Client {
			return mockGraph
		},
		Cookies: func(name string) string {
			if cookie, cookieErr := req.Cookie(name); cookieErr == nil {
				return cookie.Value
			}
			return ""
		},
		CSRFCookieName: cfg.Sessions.CSRFCookieName,
	})
	if err != nil {
		t.Fatalf("failed to build visitor session: %v", err)
	}
	appCtx.Session = visitor

	return &TestContext{
		AppContext:     appCtx,
		Request:        req,
		Response:       rr,
		MockController: ctrl,
		MockIDP:        mockIDP,
		MockAPI:        mockAPI,
		MockGraph:      mockGraph,
		Sessions:       sessions,
		LogHandler:     logHandler,
	}
}

// Finish should be called at the end of tests to clean up mocks
func (tc *TestContext) Finish() {
	if tc.MockController != nil {
		tc.MockController.Finish()
	}
}

// SignInVisitor marks the visitor's app session as holding a completed login
// exchange.
func (tc *TestContext) SignInVisitor(email string) {
	tc.Sessions.SetUserInfo(tc.AppContext, &authn.UserInfo{Email: email})
}

// ExpectSessionLogin sets up an expectation for the backend credential
// exchange.
func (tc *TestContext) ExpectSessionLogin(userInfo *authn.UserInfo, cookies []*http.Cookie, err error) *gomock.Call {
	return tc.MockAPI.EXPECT().
		SessionLogin(gomock.Any(), gomock.AssignableToTypeOf(api.LoginRequest{})).
		Return(userInfo, cookies, err)
}

// ExpectMe sets up an expectation for the profile fetch.
func (tc *TestContext) ExpectMe(user *graph.User, err error) *gomock.Call {
	return tc.MockGraph.EXPECT().Me(gomock.Any()).Return(user, err)
}

// ExpectSignOut sets up an expectation for terminating the provider session.
func (tc *TestContext) ExpectSignOut(err error) *gomock.Call {
	return tc.MockIDP.EXPECT().SignOut(gomock.Any(), gomock.Any()).Return(err)
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// CallHandler executes a handler with the test context
func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

// AssertStatus checks the HTTP status code
func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

// AssertContentType checks the content type header
func (tc *TestContext) AssertContentType(t *testing.T, expectedType string) {
	t.Helper()
	if ct := tc.Response.Header().Get("Content-Type"); ct != expectedType {
		t.Errorf("Expected content type %s, got %s", expectedType, ct)
	}
}

// AssertRedirect checks the status and Location header of a redirect.
func (tc *TestContext) AssertRedirect(t *testing.T, expectedStatus int, expectedLocation string) {
	t.Helper()
	tc.AssertStatus(t, expectedStatus)
	if loc := tc.Response.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %q, got %q", expectedLocation, loc)
	}
}

// ResponseCookie returns the named Set-Cookie directive, or nil.
func (tc *TestContext) ResponseCookie(name string) *http.Cookie {
	for _, cookie := range tc.Response.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// GetJSONResponse parses the response body as JSON
func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

// AssertJSONString checks a specific string field in a JSON response
func (tc *TestContext) AssertJSONString(t *testing.T, field string, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualString, ok := actual.(string)
	if !ok {
		t.Errorf("Expected %s to be a string, got %T", field, actual)
		return
	}

	if actualString != expected {
		t.Errorf("Expected %s to be %q, got %q", field, expected, actualString)
	}
}

// AssertJSONBool checks a specific boolean field in a JSON response
func (tc *TestContext) AssertJSONBool(t *testing.T, field string, expected bool) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]

	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}

	actualBool, ok := actual.(bool)
	if !ok {
		t.Errorf("Expected %s to be a boolean, got %T", field, actual)
		return
	}

	if actualBool != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, actualBool)
	}
}

// WithConfig allows you to override the default config for specific tests
func (tc *TestContext) WithConfig(cfg *config.Config) *TestContext {
	tc.AppContext.Config = cfg
	return tc
}

// WithQueryParam adds a query parameter to the request
func (tc *TestContext) WithQueryParam(key, value string) *TestContext {
	q := tc.Request.URL.Query()
	q.Add(key, value)
	tc.Request.URL.RawQuery = q.Encode()
	return tc
}

// WithBody replaces the request with one carrying the given JSON body.
func (tc *TestContext) WithBody(t *testing.T, method, url string, body any) *TestContext {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(tc.AppContext.Context)

	tc.Request = req
	tc.AppContext.Request = req
	return tc
}

// WithURLParam adds a chi route parameter to the request, as the router
// would when matching a pattern like /tasks/{taskID}.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	rctx := chi.RouteContext(tc.Request.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, rctx))
		tc.Request = req
		tc.AppContext.Request = req
	}
	rctx.URLParams.Add(key, value)
	return tc
}

// WithCookie adds a cookie to the request.
func (tc *TestContext) WithCookie(name, value string) *TestContext {
	tc.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	return tc
}
