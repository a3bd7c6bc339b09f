package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/Erickrodrigues05/angohire/internal/pkg/auth"
)

// AdminTokenHeader carries the shared administrative credential.
const AdminTokenHeader = "X-Admin-Token"

// AdminRequired ensures the administrative credential is present before
// accessing handler.
func AdminRequired(verifier pkgAuth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" || !verifier.Verify(token) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
