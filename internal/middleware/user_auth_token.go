package middleware

import (
	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	if s, exist := c.GetQuery("authorization"); exist {
		return s
	}
	if s := c.GetHeader("Authorization"); len(s) != 0 {
		return s
	}
	if s, exist := c.GetQuery("token"); exist {
		return s
	}
	if s := c.GetHeader("Token"); len(s) != 0 {
		return s
	}
	return ""
}

// UserAuthToken requires a valid token and stores its claims.
func UserAuthToken(tm app.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)

		token := extractToken(c)
		if token == "" {
			response.ToResponse(code.ErrorNotUserAuthToken)
			c.Abort()
			return
		}

		user, err := tm.Parse(token)
		if err != nil {
			response.ToResponse(code.ErrorInvalidUserAuthToken)
			c.Abort()
			return
		}
		c.Set("user_token", user)

		c.Next()
	}
}

// OptionalAuthToken parses a token when present but never rejects the
// request: an anonymous edit is attributed to the client IP instead of a
// user, so missing editor context degrades rather than fails.
func OptionalAuthToken(tm app.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if user, err := tm.Parse(token); err == nil {
				c.Set("user_token", user)
			}
		}
		c.Next()
	}
}
