//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/usecase"
	"travel-booking/tests/common/httptest"
	usecasemock "travel-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, validator usecase.TokenValidator, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(validator)

	r.GET("/private", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "operator": middleware.IsOperator(c)})
	})
	r.GET("/public", m.OptionalAuth(), func(c *gin.Context) {
		_, authed := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authed": authed})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	userID := uuid.New()

	t.Run("Bearerトークンで認証成功", func(t *testing.T) {
		validator.EXPECT().ValidateToken("good").Return(usecase.Principal{UserID: userID, Role: user.RoleViewer}, nil)
		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleViewer), http.MethodGet, "/private", nil, "good")

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, false, body["operator"])
	})

	t.Run("Cookieが優先される", func(t *testing.T) {
		validator.EXPECT().ValidateToken("from-cookie").Return(usecase.Principal{UserID: userID, Role: user.RoleAdmin}, nil)
		cookies := []*http.Cookie{{Name: cookie.AccessTokenName, Value: "from-cookie"}}
		rec := httptest.PerformRequestWithCookies(t, newRouter(t, validator, user.RoleViewer), http.MethodGet, "/private", nil, cookies, "from-header")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("トークンなしは401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleViewer), http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("無効なトークンは401", func(t *testing.T) {
		validator.EXPECT().ValidateToken("bad").Return(usecase.Principal{}, usecase.ErrInvalidAccessToken)
		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleViewer), http.MethodGet, "/private", nil, "bad")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)

	cases := []struct {
		name   string
		role   user.Role
		status int
	}{
		{name: "viewerはoperator権限不足", role: user.RoleViewer, status: http.StatusForbidden},
		{name: "operatorは通過", role: user.RoleOperator, status: http.StatusOK},
		{name: "adminは通過", role: user.RoleAdmin, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			validator.EXPECT().ValidateToken("tok").Return(usecase.Principal{UserID: uuid.New(), Role: tc.role}, nil)
			rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleOperator), http.MethodGet, "/private", nil, "tok")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)

	t.Run("トークンなしでも通過", func(t *testing.T) {
		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleViewer), http.MethodGet, "/public", nil, "")
		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, false, body["authed"])
	})

	t.Run("無効なトークンは匿名扱い", func(t *testing.T) {
		validator.EXPECT().ValidateToken("bad").Return(usecase.Principal{}, usecase.ErrInvalidAccessToken)
		rec := httptest.PerformRequest(t, newRouter(t, validator, user.RoleViewer), http.MethodGet, "/public", nil, "bad")
		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, false, body["authed"])
	})
}
