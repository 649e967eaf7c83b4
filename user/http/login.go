package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	type loginResponse struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	logged, err := h.userSrvc.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	token, err := auth.GenerateJWT(
		logged.Username, logged.Email,
		logged.UUID, logged.Role,
		h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	auth.SetAuthCookie(w, token, r.TLS != nil)
	httpjson.WriteSuccessJson(w, loginResponse{
		User:  mapUser(logged),
		Token: token,
	})
}
