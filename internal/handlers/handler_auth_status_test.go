package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"tasklist-web/internal/graph"
	"tasklist-web/internal/testutil"
)

func TestAuthStatusHandler_ShouldReportAnonymousVisitor(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	// No profile fetch may happen for a signed-out visitor.
	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONBool(t, "authenticated", false)
}

func TestAuthStatusHandler_ShouldReportSignedInVisitorWithProfile(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")
	tc.ExpectMe(&graph.User{ID: "u1", Name: "Ada"}, nil)

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)

	response := tc.GetJSONResponse(t)
	user, ok := response["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object in response, got %v", response["user"])
	}
	if user["name"] != "Ada" {
		t.Errorf("expected user name Ada, got %v", user["name"])
	}
}

func TestAuthStatusHandler_ShouldStayAuthenticatedOnProfileFailure(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/auth/status")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")
	tc.ExpectMe(nil, fmt.Errorf("profile service down"))

	tc.CallHandler(GETAuthStatusHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONBool(t, "authenticated", true)

	if _, exists := tc.GetJSONResponse(t)["user"]; exists {
		t.Error("expected no user object when the profile fetch fails")
	}
}
