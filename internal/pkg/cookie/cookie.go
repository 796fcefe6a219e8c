// Package cookie carries the access token in an HttpOnly cookie so browser
// clients never handle the JWT directly.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"travel-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenName = "access_token"

// AccessToken writes and clears the token cookie with one fixed policy.
type AccessToken struct {
	domain   string
	secure   bool
	sameSite http.SameSite
}

func NewAccessToken(cfg config.CookieConfig) AccessToken {
	return AccessToken{
		domain:   cfg.Domain,
		secure:   cfg.Secure,
		sameSite: parseSameSite(cfg.SameSite),
	}
}

func (a AccessToken) Set(c *gin.Context, token string, ttl time.Duration) {
	a.write(c, token, int(ttl/time.Second))
}

// Clear expires the cookie immediately.
func (a AccessToken) Clear(c *gin.Context) {
	a.write(c, "", -1)
}

func (a AccessToken) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(a.sameSite)
	c.SetCookie(AccessTokenName, value, maxAge, "/", a.domain, a.secure, true)
}

// Read returns "" when the request carries no token cookie.
func Read(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenName)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
