package handlers

import (
	"net/http"
	"testing"

	"tasklist-web/internal/testutil"
)

func TestFederatedLoginHandler_ShouldRejectUnknownProvider(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/federated/twitter")
	defer tc.Finish()

	tc.WithURLParam("provider", "twitter")

	tc.CallHandler(GETFederatedLoginHandler)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertJSONString(t, "error", "unknown provider")
}

func TestFederatedLoginHandler_ShouldRejectUnconfiguredProvider(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/federated/google")
	defer tc.Finish()

	tc.WithURLParam("provider", "google")

	tc.CallHandler(GETFederatedLoginHandler)

	tc.AssertStatus(t, http.StatusNotFound)
}

func TestFederatedCallbackHandler_ShouldRedirectToSignInWithoutLiveFlow(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/federated/callback")
	defer tc.Finish()

	tc.CallHandler(GETFederatedCallbackHandler)

	tc.AssertRedirect(t, http.StatusFound, "/sign-in?error=auth_failed")
}
