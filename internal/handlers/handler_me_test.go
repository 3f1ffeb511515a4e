package handlers

import (
	"net/http"
	"testing"

	"tasklist-web/internal/graph"
	"tasklist-web/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestMeHandler_ShouldReturnProfile(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/me")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")
	tc.ExpectMe(&graph.User{ID: "u1", Name: "Ada"}, nil)

	tc.CallHandler(GETMeHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "name", "Ada")
}

func TestMeNameHandler_ShouldRenameAndRefresh(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "PUT", "/api/me/name")
	defer tc.Finish()

	tc.SignInVisitor("ada@example.com")
	tc.WithBody(t, "PUT", "/api/me/name", SetNameRequest{Name: "Ada L"})

	tc.MockGraph.EXPECT().SetUserName(gomock.Any(), "Ada L").Return(nil)
	tc.ExpectMe(&graph.User{ID: "u1", Name: "Ada L"}, nil)

	tc.CallHandler(PUTMeNameHandler)

	tc.AssertStatus(t, http.StatusOK)

	// The refreshed profile is what later reads see.
	if user := tc.Sessions.CurrentUser(tc.AppContext); user == nil || user.Name != "Ada L" {
		t.Errorf("expected refreshed profile in session, got %+v", user)
	}
}
