package http

import (
	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/user"
	"github.com/go-chi/chi/v5"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
		JwtKey:   jwtKey,
	}
}

func (h *UserHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/role", h.GetRole)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/users/me", h.WhoAmI)
		r.Put("/users/me", h.Update)
		r.Delete("/users/me", h.Delete)
	})
}
