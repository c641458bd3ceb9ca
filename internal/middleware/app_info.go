package middleware

import "github.com/gin-gonic/gin"

// AppInfoWithConfig stamps service identity into the context for handlers
// and response headers.
func AppInfoWithConfig(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Header("X-Service-Version", version)
		c.Next()
	}
}
