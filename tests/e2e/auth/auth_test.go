//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/dto/request"
	"travel-booking/internal/handler/dto/response"
	"travel-booking/tests/common/authtest"
	"travel-booking/tests/common/dbtest"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", user.RoleAdmin.String())
	dbtest.CreateTestUser(s.T(), s.DB, "viewer@example.com", user.RoleViewer.String())
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", user.RoleViewer.String())

	// 非アクティブユーザーを作成
	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res response.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken, "アクセストークンが空")
			require.Equal(t, tt.email, res.User.Email)

			cookie := httptest.ExtractCookie(w, "access_token")
			require.NotNil(t, cookie, "クッキーが設定されていない")
			require.Equal(t, res.AccessToken, cookie.Value)

			// last_loginが更新されることを確認
			var updated bool
			err := s.DB.QueryRow(t.Context(), "SELECT last_login IS NOT NULL FROM users WHERE email = $1", tt.email).Scan(&updated)
			require.NoError(t, err)
			require.True(t, updated, "last_loginが更新されていない")
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("ログインユーザーの情報取得", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "viewer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "viewer@example.com", res.Email)
		require.Equal(t, user.RoleViewer.String(), res.Role)
		require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("クッキーのみで認証できる", func() {
		t := s.T()
		loginRes := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginRes.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(loginRes), "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("期限切れトークンの拒否", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", user.RoleAdmin.String())
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})

	s.Run("無効なトークン", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()
		loginRes := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginRes.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(loginRes))
	})

	s.Run("トークンなし", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
