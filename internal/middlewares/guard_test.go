package middlewares_test

import (
	"fmt"
	"net/http"
	"testing"

	"tasklist-web/internal/idp"
	"tasklist-web/internal/middlewares"
	"tasklist-web/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func callGuard(tc *testutil.TestContext, guard func(http.Handler) http.Handler) bool {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})

	req := middlewares.RequestWithAppContext(tc.Request, tc.AppContext)
	guard(next).ServeHTTP(tc.Response, req)

	return called
}

func TestGuardPagePassesOnAppSessionFlag(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/tasks")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")

	// No VerifySessionCookie expectation: the flag alone must be enough.
	assert.True(t, callGuard(tc, middlewares.GuardPage))
}

func TestGuardPageVerifiesSessionCookieAndHydrates(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/tasks")
	defer tc.Finish()

	tc.WithCookie("__session", "valid-cookie")
	tc.MockIDP.EXPECT().
		VerifySessionCookie(gomock.Any(), "valid-cookie").
		Return(&idp.Token{UserID: "u1", Email: "ada@example.com"}, nil)

	assert.True(t, callGuard(tc, middlewares.GuardPage))

	info := tc.Sessions.UserInfo(tc.AppContext)
	require.NotNil(t, info)
	assert.Equal(t, "ada@example.com", info.Email)
}

func TestGuardPageRedirectsWithDestination(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/tasks?tab=open")
	defer tc.Finish()

	assert.False(t, callGuard(tc, middlewares.GuardPage))
	tc.AssertRedirect(t, http.StatusFound, "/sign-in?redirect=%2Ftasks%3Ftab%3Dopen")

	assert.Equal(t, "/tasks?tab=open", tc.Sessions.RedirectAfterLogin(tc.AppContext))
}

func TestGuardPageRedirectsOnBadCookie(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/tasks")
	defer tc.Finish()

	tc.WithCookie("__session", "expired")
	tc.MockIDP.EXPECT().
		VerifySessionCookie(gomock.Any(), "expired").
		Return(nil, fmt.Errorf("session cookie expired"))

	assert.False(t, callGuard(tc, middlewares.GuardPage))
	tc.AssertRedirect(t, http.StatusFound, "/sign-in?redirect=%2Ftasks")
}

func TestGuardPageLetsSignInPageThrough(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/sign-in")
	defer tc.Finish()

	assert.True(t, callGuard(tc, middlewares.GuardPage))
	assert.Empty(t, tc.Response.Header().Get("Location"))
}

func TestRequireSessionRejectsSignedOut(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/tasks")
	defer tc.Finish()

	assert.False(t, callGuard(tc, middlewares.RequireSession))
	tc.AssertStatus(t, http.StatusUnauthorized)
}

func TestRequireSessionPassesSignedIn(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/api/tasks")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")

	assert.True(t, callGuard(tc, middlewares.RequireSession))
}
