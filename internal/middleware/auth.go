package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "access_token"

// SessionTTL bounds both the token expiry and the cookie max-age.
const SessionTTL = 24 * time.Hour

// ContextAdminKey is where the authenticated admin email lands in gin context.
const ContextAdminKey = "admin_email"

// AdminLookup reports whether the email still resolves to a known admin, so
// a valid signature alone is not enough after the account is removed.
type AdminLookup func(ctx context.Context, email string) error

// IssueSession mints a signed session token for the given admin email.
func IssueSession(secret []byte, email string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(SessionTTL).Unix(),
	}).SignedString(secret)
}

// ParseSession verifies the token signature and expiry and returns the admin
// email it was issued for.
func ParseSession(secret []byte, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid session token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	email, _ := claims["sub"].(string)
	if email == "" {
		return "", fmt.Errorf("invalid session subject")
	}
	return email, nil
}

// SessionAuth gates admin routes on the session cookie. Unauthenticated
// callers get a 401 with a Location hint pointing at the login page.
func SessionAuth(secret []byte, lookup AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Header("Location", "/login")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		email, err := ParseSession(secret, token)
		if err != nil {
			c.Header("Location", "/login")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
			return
		}
		if err := lookup(c.Request.Context(), email); err != nil {
			c.Header("Location", "/login")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
			return
		}
		c.Set(ContextAdminKey, email)
		c.Next()
	}
}
