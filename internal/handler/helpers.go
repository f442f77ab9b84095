package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"watchmark/internal/middleware"
	appErr "watchmark/internal/pkg/errors"
	"watchmark/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err != nil {
		requestID, _ := c.Get(middleware.ContextRequestIDKey)
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	switch {
	case err == nil:
		return
	case err == appErr.ErrNoCurrentUser:
		// An unset pointer is a service-level fault, not a missing record.
		response.Error(c, http.StatusInternalServerError, "no_current_user", "current user unresolved")
	case err == appErr.ErrNotFound:
		response.Error(c, http.StatusNotFound, "not_found", "user not found")
	case err == appErr.ErrUnauthorized:
		response.Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
	case err == appErr.ErrInvalid:
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "internal", "internal error")
	}
}
