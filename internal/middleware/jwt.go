package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"watchmark/internal/pkg/jwt"
	"watchmark/internal/pkg/response"
)

// ContextUserEmailKey holds the email from the verified bearer token. Only
// the token-scoped routes run this middleware; the legacy routes resolve
// identity from the session pointer instead.
const ContextUserEmailKey = "user_email"

func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "missing authorization")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid authorization")
			c.Abort()
			return
		}
		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid token")
			c.Abort()
			return
		}
		c.Set(ContextUserEmailKey, claims.Email)
		c.Next()
	}
}
