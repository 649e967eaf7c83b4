package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/challenge"
	"github.com/codeclash/backend/httpjson"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *ChallengeHttpHandler) Create(w http.ResponseWriter, r *http.Request) {
	type createRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	claims, _ := auth.ClaimsFromContext(r.Context())
	adminUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	var request createRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.challengeSrvc.CreateChallenge(r.Context(), challenge.CreateChallengeParams{
		Title:       request.Title,
		Description: request.Description,
		CreatedBy:   adminUUID,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJsonStatus(w, mapChallenge(*created), http.StatusCreated)
}

func (h *ChallengeHttpHandler) Get(w http.ResponseWriter, r *http.Request) {
	challengeUUID, err := uuid.Parse(chi.URLParam(r, "challengeUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	found, err := h.challengeSrvc.GetChallenge(r.Context(), challengeUUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapChallenge(*found))
}

func (h *ChallengeHttpHandler) List(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.challengeSrvc.ListChallenges(r.Context())
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]Challenge, 0, len(challenges))
	for _, c := range challenges {
		response = append(response, mapChallenge(c))
	}
	httpjson.WriteSuccessJson(w, response)
}

// ListOwn returns the challenges created by the calling admin.
func (h *ChallengeHttpHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	adminUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	challenges, err := h.challengeSrvc.ListChallengesByAdmin(r.Context(), adminUUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]Challenge, 0, len(challenges))
	for _, c := range challenges {
		response = append(response, mapChallenge(c))
	}
	httpjson.WriteSuccessJson(w, response)
}

func (h *ChallengeHttpHandler) Update(w http.ResponseWriter, r *http.Request) {
	type updateRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	claims, _ := auth.ClaimsFromContext(r.Context())
	adminUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	challengeUUID, err := uuid.Parse(chi.URLParam(r, "challengeUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request updateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := h.challengeSrvc.UpdateChallenge(r.Context(), challengeUUID, adminUUID, challenge.UpdateChallengeParams{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapChallenge(*updated))
}

func (h *ChallengeHttpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFromContext(r.Context())
	adminUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	challengeUUID, err := uuid.Parse(chi.URLParam(r, "challengeUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.challengeSrvc.DeleteChallenge(r.Context(), challengeUUID, adminUUID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"message": "Challenge deleted successfully"})
}
