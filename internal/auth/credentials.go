package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore answers admin credential checks. The default is a
// single static entry, but anything multi-admin can plug in here.
type CredentialStore interface {
	Verify(username, password string) bool
}

// StaticStore holds one username and a bcrypt hash, fixed at startup.
type StaticStore struct {
	Username string
	Hash     []byte
}

// NewStaticStore hashes the configured admin password once at startup.
func NewStaticStore(username, password string) (StaticStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return StaticStore{}, err
	}
	return StaticStore{Username: username, Hash: hash}, nil
}

func (s StaticStore) Verify(username, password string) bool {
	if username != s.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.Hash, []byte(password)) == nil
}

// Basic gates a route group behind HTTP Basic auth. Failures get the
// standard challenge and no further detail.
func Basic(store CredentialStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !store.Verify(user, pass) {
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("admin_user", user)
		c.Next()
	}
}
