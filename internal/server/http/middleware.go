package http

import (
	"net/http"
	"strings"

	"github.com/agroclima/agroclima-server/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by verifyAccess for downstream handlers.
const (
	ctxEmailKey  = "email"
	ctxUserIDKey = "userID"
)

// verifyAccess gates protected routes on a valid bearer access token.
// A missing header is 401; a token that fails verification is 403.
func (s *Server) verifyAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(h, "Bearer ")

		claims, err := auth.ParseToken(token, s.accessSecret)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ctxEmailKey, claims.Email)
		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}
