package handlers

import (
	"net/http"
	"testing"

	"tasklist-web/internal/idp"
	"tasklist-web/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestPasswordResetHandler_ShouldSendEmail(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/password-reset")
	defer tc.Finish()

	tc.WithBody(t, "POST", "/api/auth/password-reset", PasswordResetRequest{Email: "ada@example.com"})

	tc.MockIDP.EXPECT().
		SendPasswordResetEmail(gomock.Any(), "ada@example.com").
		Return(nil)

	tc.CallHandler(POSTPasswordResetHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONString(t, "status", "ok")
}

func TestPasswordResetHandler_ShouldMapUnknownUser(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/password-reset")
	defer tc.Finish()

	tc.WithBody(t, "POST", "/api/auth/password-reset", PasswordResetRequest{Email: "nobody@example.com"})

	tc.MockIDP.EXPECT().
		SendPasswordResetEmail(gomock.Any(), "nobody@example.com").
		Return(&idp.Error{ErrCode: "auth/user-not-found"})

	tc.CallHandler(POSTPasswordResetHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONString(t, "error", "user_not_found")
}
