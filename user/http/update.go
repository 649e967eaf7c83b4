package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
	"github.com/codeclash/backend/user"
	"github.com/google/uuid"
)

func (h *UserHttpHandler) Update(w http.ResponseWriter, r *http.Request) {
	type updateRequest struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	claims, _ := auth.ClaimsFromContext(r.Context())
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var request updateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := h.userSrvc.UpdateUser(r.Context(), userUUID, user.UpdateUserParams{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUser(updated))
}

func (h *UserHttpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	if err := h.userSrvc.DeleteUser(r.Context(), userUUID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	auth.ClearAuthCookie(w, r.TLS != nil)
	httpjson.WriteSuccessJson(w, map[string]string{"message": "User removed successfully"})
}
