package user_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHttp(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	userData := map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}

	w := register(t, userHandler, userData)
	require.Equal(t, http.StatusOK, w.Code, "Registration failed: %s", w.Body.String())

	loginData := map[string]interface{}{
		"username": "testuser",
		"password": "password123",
	}

	w = login(t, userHandler, loginData)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   struct {
			User  map[string]interface{} `json:"user"`
			Token string                 `json:"token"`
		} `json:"data"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")

	assert.Equal(t, "success", responseWrapper.Status)
	assert.NotEmpty(t, responseWrapper.Data.Token, "JWT token should not be empty")
	assert.Equal(t, "testuser", responseWrapper.Data.User["username"])

	// the issued token must round-trip through validation
	claims, err := auth.ValidateJWT(responseWrapper.Data.Token, testJwtKey)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, auth.RoleUser, claims.Role)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.AuthCookieName, cookies[0].Name)
	assert.Equal(t, responseWrapper.Data.Token, cookies[0].Value)
}

func TestLoginHttpInvalidCredentials(t *testing.T) {
	userHandler := setupUserHttpHandler(t)

	userData := map[string]interface{}{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}

	w := register(t, userHandler, userData)
	require.Equal(t, http.StatusOK, w.Code, "Registration failed: %s", w.Body.String())

	testCases := []struct {
		name      string
		loginData map[string]interface{}
	}{
		{
			name: "Wrong Password",
			loginData: map[string]interface{}{
				"username": "testuser",
				"password": "wrongpassword",
			},
		},
		{
			name: "Unknown Username",
			loginData: map[string]interface{}{
				"username": "nosuchuser",
				"password": "password123",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := login(t, userHandler, tc.loginData)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assertErrorInHttpResponse(t, w, user.ErrCodeUsernameOrPasswordIncorrect)
		})
	}
}
