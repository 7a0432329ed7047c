package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-booking/internal/httpresp"
	"github.com/BruksfildServices01/salon-booking/internal/policy"
	"github.com/BruksfildServices01/salon-booking/internal/session"
)

const ContextIdentity = "identity"

// AuthMiddleware reads the session from the token cookie. A Bearer
// Authorization header is accepted when the cookie is absent.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := sessions.Verify(tokenFrom(c))
		if err != nil {
			httpresp.Abort(c, err)
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

func tokenFrom(c *gin.Context) string {
	if raw, err := c.Cookie(session.CookieName); err == nil && raw != "" {
		return raw
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.RequireRole(role, CurrentIdentity(c)); err != nil {
			httpresp.Abort(c, err)
			return
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) session.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(session.Identity); ok {
			return id
		}
	}
	return session.Identity{}
}

// ======================================================
// COOKIE
// ======================================================

func SetSessionCookie(c *gin.Context, token string, sessions *session.Manager, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		session.CookieName,
		token,
		int(sessions.TTL().Seconds()),
		"/",
		"",
		secure,
		true,
	)
}

func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", secure, true)
}
