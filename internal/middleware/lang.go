package middleware

import (
	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator negotiates a validation-message translator from the
// request locale and stores it for BindAndValid.
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.GetHeader("locale")
		if locale == "" {
			locale = "en"
		}
		trans, _ := uni.GetTranslator(locale)
		c.Set("trans", trans)
		c.Next()
	}
}
