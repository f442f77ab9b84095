// Package response defines the JSON envelope every handler answers with:
// {"data": ...} on success, {"error": {"code", "message"}} on failure. The
// code field is a stable machine-readable string ("no_current_user",
// "password_mismatch", ...); message is for humans and may change.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": APIError{Code: code, Message: message}})
}
