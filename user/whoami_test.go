package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeclash/backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoAmIHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	token := registerAndGetToken(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseWrapper))

	assert.Equal(t, "success", responseWrapper.Status)
	assert.Equal(t, "testuser", responseWrapper.Data["username"])
	assert.Equal(t, "test@example.com", responseWrapper.Data["email"])
}

func TestWhoAmIHttpViaCookie(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	token := registerAndGetToken(t, userHandler, map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.AuthCookieName, Value: token})
	w := httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
}

func TestWhoAmIHttpUnauthenticated(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetRoleHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	// guests get a role too
	req := httptest.NewRequest(http.MethodGet, "/auth/role", nil)
	w := httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseWrapper struct {
		Data struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseWrapper))
	assert.Equal(t, "guest", responseWrapper.Data.Role)

	token := registerAndGetToken(t, userHandler, map[string]interface{}{
		"username": "adminuser",
		"email":    "admin@example.com",
		"password": "password123",
		"role":     auth.RoleAdmin,
	})

	req = httptest.NewRequest(http.MethodGet, "/auth/role", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	userHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseWrapper))
	assert.Equal(t, auth.RoleAdmin, responseWrapper.Data.Role)
}
