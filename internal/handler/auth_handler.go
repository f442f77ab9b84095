package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	appErr "watchmark/internal/pkg/errors"
	"watchmark/internal/pkg/response"
	"watchmark/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signupRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	ResetPassword string `json:"resetPassword"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	_, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, req.ResetPassword)
	if err == appErr.ErrInvalid {
		response.Error(c, http.StatusBadRequest, "password_mismatch", "password does not match")
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "User Registered success"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "invalid request")
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	// The legacy API distinguishes unknown email from wrong password. That
	// leaks account existence; kept for client compatibility.
	if err == appErr.ErrNotFound {
		response.Error(c, http.StatusNotFound, "not_found", "user not found")
		return
	}
	if err == appErr.ErrUnauthorized {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid password")
		return
	}
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}
