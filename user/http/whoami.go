package http

import (
	"log/slog"
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
	"github.com/google/uuid"
)

func (h *UserHttpHandler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())

	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	current, err := h.userSrvc.GetUserByUUID(r.Context(), userUUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapUser(current))
}

// GetRole returns the role of the currently logged-in user
func (h *UserHttpHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	type roleResponse struct {
		Role string `json:"role"`
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		httpjson.WriteSuccessJson(w, roleResponse{Role: "guest"})
		return
	}

	httpjson.WriteSuccessJson(w, roleResponse{Role: claims.Role})
}
