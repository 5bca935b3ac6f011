package handlers_test

import (
	"net/http"
	"testing"

	"food-court-api/config"
	"food-court-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupServer(t)

	payload := gin.H{
		"name":     "billy",
		"email":    "a@x.com",
		"password": "password123",
	}
	w := doJSON(t, r, http.MethodPost, "/register", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Second attempt with the same email must conflict and leave one row
	payload["name"] = "someone-else"
	w = doJSON(t, r, http.MethodPost, "/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CONFLICT", decodeBody(t, w)["code"])

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterDuplicateName(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name": "billy", "email": "b1@x.com", "password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name": "billy", "email": "b2@x.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CONFLICT", decodeBody(t, w)["code"])
}

func TestLogin(t *testing.T) {
	r := setupServer(t)
	registerUser(t, r, "billy", models.RoleCustomer)

	// Wrong password and unknown email are indistinguishable
	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email": "billy@example.com", "password": "wrongpass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPass := decodeBody(t, w)["error"]

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPass, decodeBody(t, w)["error"])

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email": "billy@example.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])
}

func TestLogoutRevokesToken(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "billy", models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/check-auth", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Token has not expired but its jti is on the deny-list now
	w = doJSON(t, r, http.MethodGet, "/check-auth", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeBody(t, w)["code"])
}

func TestCheckAuthIdentity(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "agnes", models.RoleOwner)

	w := doJSON(t, r, http.MethodGet, "/check-auth", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "agnes@example.com", user["email"])
	assert.Equal(t, "owner", user["role"])
}

func TestCheckAuthRejectsMissingToken(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/check-auth", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/check-auth", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
