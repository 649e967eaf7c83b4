package http

import (
	"time"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/challenge"
	"github.com/go-chi/chi/v5"
)

type ChallengeHttpHandler struct {
	challengeSrvc *challenge.ChallengeSrvc
}

func NewChallengeHttpHandler(challengeSrvc *challenge.ChallengeSrvc) *ChallengeHttpHandler {
	return &ChallengeHttpHandler{challengeSrvc: challengeSrvc}
}

func (h *ChallengeHttpHandler) RegisterRoutes(r chi.Router) {
	r.Get("/challenges", h.List)
	r.Get("/challenges/{challengeUUID}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/challenges", h.Create)
		r.Put("/challenges/{challengeUUID}", h.Update)
		r.Delete("/challenges/{challengeUUID}", h.Delete)
		r.Get("/admin/challenges", h.ListOwn)
	})
}

type Challenge struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func mapChallenge(c challenge.Challenge) Challenge {
	return Challenge{
		UUID:        c.UUID.String(),
		Title:       c.Title,
		Description: c.Description,
		CreatedBy:   c.CreatedBy.String(),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
