package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"coolbreeze/internal/domain"
	authsvc "coolbreeze/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// Stable error codes the frontend switches on.
const (
	codeAuthRequired   = "auth_required"
	codeAlreadyExists  = "already_exists"
	codeNotFound       = "not_found"
	codeInvalidRequest = "invalid_request"
	codeInternal       = "internal"
)

const (
	userCtxKey  = "authUser"
	tokenCtxKey = "authToken"
)

// authMiddleware resolves the Bearer token to a user on every request.
// Validity is never cached across calls, so a token revoked elsewhere stops
// working immediately.
func authMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
			return
		}
		u, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required", "code": codeAuthRequired})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": codeInternal})
			return
		}
		c.Set(userCtxKey, u)
		c.Set(tokenCtxKey, token)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// currentUser returns the user the auth middleware stored on the context.
func currentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userCtxKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}

func currentToken(c *gin.Context) string {
	v, ok := c.Get(tokenCtxKey)
	if !ok {
		return ""
	}
	t, _ := v.(string)
	return t
}
