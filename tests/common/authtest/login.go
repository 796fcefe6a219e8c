//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"travel-booking/internal/handler/dto/request"
	"travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches the hash dbtest stores for every fixture user.
const DefaultPassword = "password123"

// LoginUser logs in through the API and returns the token from the cookie,
// checking it is the same token the body carries.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token := httptest.ExtractCookie(w, cookie.AccessTokenName)
	require.NotNil(t, token, "ログインでCookieが発行されていない")
	require.NotEmpty(t, token.Value)

	var body response.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.Equal(t, token.Value, body.AccessToken)
	return token.Value
}

// CreateAndLogin inserts a fixture user with the given role and logs in as it.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
