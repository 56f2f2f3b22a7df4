package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/indrishabhtech/ap/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AdminHeader carries the shared secret for mutating endpoints.
const AdminHeader = "X-Admin-Key"

// AdminMiddleware compares the shared secret in constant time. An empty
// configured secret fails closed.
func AdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminHeader)
		if secret == "" || provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", httpdto.CodeUnauthorized))
			c.Abort()
			return
		}
		c.Next()
	}
}
