// Package auth resolves the current session identity. Token verification is
// delegated to the hosted auth tier; by the time a request reaches this
// service, the reverse proxy has validated the access token and injected the
// identity headers. This package is only the accessor.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofreelancing/platform-api/internal/apperrors"
)

// Identity headers injected by the auth proxy.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
)

const identityKey = "auth.identity"

// Identity is the signed-in user: an applicant, or the user behind an
// organization account.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

func identityFromHeaders(c *gin.Context) *Identity {
	userID := c.GetHeader(HeaderUserID)
	email := c.GetHeader(HeaderUserEmail)
	if userID == "" || email == "" {
		return nil
	}
	name := c.GetHeader(HeaderUserName)
	if name == "" {
		name = "Anonymous"
	}
	return &Identity{UserID: userID, Email: email, Name: name}
}

// RequireAuth aborts with 401 when no identity is present. The SPA treats a
// 401 as a redirect to the sign-in page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFromHeaders(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in to continue"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// FromContext returns the identity stored by RequireAuth, or ErrAuthRequired
// when the route was reached without one.
func FromContext(c *gin.Context) (*Identity, error) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, apperrors.ErrAuthRequired
	}
	identity, ok := v.(*Identity)
	if !ok || identity == nil {
		return nil, apperrors.ErrAuthRequired
	}
	return identity, nil
}
