package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"bus_depot/internal/auth"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

// identityKey is where RequireAuth stores the resolved user in the gin
// context.
const identityKey = "currentUser"

// authFailedMessage is deliberately the same for a missing header, a bad
// token, and a token whose subject no longer exists: callers learn nothing
// about which check failed.
const authFailedMessage = "could not validate credentials"

// UserResolver turns a token subject (email) into an account. Implemented
// by repository.UserRepository.
type UserResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// RequireAuth extracts the bearer token, validates it, resolves the
// subject to a user, and stores that user in the request context. Every
// request is re-validated; nothing is cached.
func RequireAuth(tokens *auth.TokenService, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authFailedMessage})
			return
		}

		subject, err := tokens.Validate(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authFailedMessage})
			return
		}

		// A token naming a deleted user is treated exactly like an
		// invalid token. A lookup that fails for any other reason is
		// an outage, not a bad credential.
		user, err := users.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authFailedMessage})
				return
			}
			logrus.WithError(err).Error("could not resolve token subject")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// RequireAdmin rejects non-admin identities with 403. It must run after
// RequireAuth on the same route.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authFailedMessage})
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only an admin may add, change or delete records"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}
