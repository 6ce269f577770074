package middleware

import (
	"context"
	"stackunderflow/internal/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：带合法 Token 注入 UID，否则按游客（UID 0）放行
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Set("user_id", uint64(0))
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), "user_id", claims.UserID))
		c.Next()
	}
}
