package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
	"github.com/codeclash/backend/user"
)

// Register creates an account and starts a session right away, issuing both
// the token in the body and the session cookie.
func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role,omitempty"`
	}

	type registerResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
		Role:     request.Role,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	token, err := auth.GenerateJWT(
		created.Username, created.Email,
		created.UUID, created.Role,
		h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	auth.SetAuthCookie(w, token, r.TLS != nil)
	httpjson.WriteSuccessJson(w, registerResponse{
		User:  mapUser(created),
		Token: token,
	})
}
