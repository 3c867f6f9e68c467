package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "rentify/internal/pkg/jwt"
	"rentify/internal/pkg/response"
)

const (
	// CtxUserID is the authenticated user's backend id (uuid string).
	CtxUserID = "user_id"
	// CtxToken is the raw bearer token, forwarded on every backend call.
	CtxToken = "token"
)

// Auth validates the bearer token with the secret shared with the listing
// backend and stashes the user identity plus the raw token on the context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxToken, tokenStr)

		c.Next()
	}
}
