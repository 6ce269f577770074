package middleware

import (
	"stackunderflow/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckRoles 要求当前用户持有任一指定角色
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		owned := make(map[string]struct{})
		for _, role := range c.GetStringSlice("roles") {
			owned[role] = struct{}{}
		}

		for _, required := range requiredRoles {
			if _, ok := owned[required]; ok {
				c.Next()
				return
			}
		}

		response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
		c.Abort()
	}
}
