package http

import (
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
)

func (h *SubmHttpHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims, _ := auth.ClaimsFromContext(r.Context())
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	subs, err := h.submSrvc.ListUserSubmissions(r.Context(), userUUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	response := make([]Submission, 0, len(subs))
	for _, s := range subs {
		response = append(response, mapSubmission(s))
	}
	httpjson.WriteSuccessJson(w, response)
}

func (h *SubmHttpHandler) ListForChallengeQuestion(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims, _ := auth.ClaimsFromContext(r.Context())
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	challengeUUID, err := uuid.Parse(chi.URLParam(r, "challengeUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subs, err := h.submSrvc.ListForChallengeQuestion(r.Context(), userUUID, challengeUUID, questionUUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	response := make([]Submission, 0, len(subs))
	for _, s := range subs {
		response = append(response, mapSubmission(s))
	}
	httpjson.WriteSuccessJson(w, response)
}

// Get returns one submission. Users can only read their own; admins can
// read any.
func (h *SubmHttpHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims, _ := auth.ClaimsFromContext(r.Context())

	submUUID, err := uuid.Parse(chi.URLParam(r, "submUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	sub, err := h.submSrvc.GetSubmission(r.Context(), submUUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	if sub.UserUUID.String() != claims.UUID && claims.Role != auth.RoleAdmin {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubmission(*sub))
}

func (h *SubmHttpHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	claims, _ := auth.ClaimsFromContext(r.Context())
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	challengeUUID, err := uuid.Parse(chi.URLParam(r, "challengeUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	progress, err := h.submSrvc.GetProgress(r.Context(), userUUID, challengeUUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapProgress(*progress))
}

func (h *SubmHttpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	submUUID, err := uuid.Parse(chi.URLParam(r, "submUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.submSrvc.DeleteSubmission(r.Context(), submUUID); err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"message": "Submission deleted successfully"})
}
