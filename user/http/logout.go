package http

import (
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
)

// Logout handles user logout by clearing the auth_token cookie
func (h *UserHttpHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAuthCookie(w, r.TLS != nil)

	httpjson.WriteSuccessJson(w, map[string]string{"message": "Logout successful"})
}
