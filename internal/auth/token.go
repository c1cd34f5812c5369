package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and verifies HS256 tokens for the admin JSON API.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
}

func (t TokenIssuer) ttl() time.Duration {
	if t.TTL != 0 {
		return t.TTL
	}
	return 24 * time.Hour
}

// Issue signs a token for the given admin username.
func (t TokenIssuer) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(t.ttl()).Unix(),
	})
	return token.SignedString(t.Secret)
}

// Verify parses a signed token and returns the admin username.
func (t TokenIssuer) Verify(raw string) (string, error) {
	parsed, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", fmt.Errorf("token missing subject")
	}
	return sub, nil
}

// RequireToken gates the admin JSON API behind a Bearer token.
func RequireToken(issuer TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == raw || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		user, err := issuer.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("admin_user", user)
		c.Next()
	}
}
