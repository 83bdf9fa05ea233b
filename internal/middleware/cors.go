package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS 无条件放行所有来源、方法和请求头。
// 前端与后端分离部署且没有鉴权边界，这是已知限制而非安全特性。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
