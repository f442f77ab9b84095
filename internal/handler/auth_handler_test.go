package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignupSuccess(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/user/signup", map[string]string{
		"email": "a@x.com", "password": "p", "resetPassword": "p",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "User Registered success", decodeData(t, resp)["msg"])
}

func TestSignupPasswordMismatch(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/user/signup", map[string]string{
		"email": "a@x.com", "password": "p", "resetPassword": "q",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	require.Equal(t, "password_mismatch", decodeErrorCode(t, resp))

	// No record was created, so login reports an unknown email.
	resp = doJSON(t, router, http.MethodPost, "/user/login", map[string]string{
		"email": "a@x.com", "password": "p",
	}, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSignupMissingFields(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/user/signup", map[string]string{
		"email": "", "password": "p", "resetPassword": "p",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	router := setupRouter(t)
	token := signupAndLogin(t, router, "a@x.com", "p")
	require.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/user/signup", map[string]string{
		"email": "a@x.com", "password": "p", "resetPassword": "p",
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/user/login", map[string]string{
		"email": "a@x.com", "password": "nope",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.Equal(t, "unauthorized", decodeErrorCode(t, resp))
}

func TestLoginUnknownEmail(t *testing.T) {
	router := setupRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/user/login", map[string]string{
		"email": "nobody@x.com", "password": "p",
	}, nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Equal(t, "not_found", decodeErrorCode(t, resp))
}
