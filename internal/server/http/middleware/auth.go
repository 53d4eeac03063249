package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/pawmart/pawmart/internal/pkg/auth"
)

const (
	// IdentityContextKey is a gin context key for the authenticated identity.
	IdentityContextKey = "identity"
	authCookieName     = "pawmart_token"
)

// TokenParser resolves bearer tokens to identities.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Identity, error)
}

// AuthRequired ensures the caller is authenticated before reaching the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ident, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(IdentityContextKey, ident)
		c.Next()
	}
}

// AuthOptional attaches an identity when a valid token is present but never
// rejects the request. Public endpoints use it where admins get a wider view.
func AuthOptional(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if ident, err := parser.ParseToken(token); err == nil {
				c.Set(IdentityContextKey, ident)
			}
		}
		c.Next()
	}
}

// AdminRequired rejects authenticated callers lacking the admin role. It must
// run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !ident.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// CurrentIdentity extracts the authenticated identity from the context.
func CurrentIdentity(c *gin.Context) (pkgAuth.Identity, bool) {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return pkgAuth.Identity{}, false
	}
	ident, ok := val.(pkgAuth.Identity)
	return ident, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
