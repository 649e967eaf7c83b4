package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/codeclash/backend/httpjson"
	"github.com/codeclash/backend/question"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *QuestionHttpHandler) Create(w http.ResponseWriter, r *http.Request) {
	type createRequest struct {
		ChallengeUUID string `json:"challenge_uuid"`
		Title         string `json:"title"`
		Statement     string `json:"statement"`
		MaxScore      int    `json:"max_score"`
	}

	var request createRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	challengeUUID, err := uuid.Parse(request.ChallengeUUID)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.questionSrvc.CreateQuestion(r.Context(), question.CreateQuestionParams{
		ChallengeUUID: challengeUUID,
		Title:         request.Title,
		Statement:     request.Statement,
		MaxScore:      request.MaxScore,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJsonStatus(w, mapQuestion(*created), http.StatusCreated)
}

func (h *QuestionHttpHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	found, err := h.questionSrvc.GetQuestion(r.Context(), questionUUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapQuestion(*found))
}

func (h *QuestionHttpHandler) ListByChallenge(w http.ResponseWriter, r *http.Request) {
	challengeUUID, err := uuid.Parse(chi.URLParam(r, "challengeUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	questions, err := h.questionSrvc.ListQuestionsByChallenge(r.Context(), challengeUUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]Question, 0, len(questions))
	for _, q := range questions {
		response = append(response, mapQuestion(q))
	}
	httpjson.WriteSuccessJson(w, response)
}

func (h *QuestionHttpHandler) Update(w http.ResponseWriter, r *http.Request) {
	type updateRequest struct {
		Title     *string `json:"title"`
		Statement *string `json:"statement"`
		MaxScore  *int    `json:"max_score"`
	}

	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request updateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updated, err := h.questionSrvc.UpdateQuestion(r.Context(), questionUUID, question.UpdateQuestionParams{
		Title:     request.Title,
		Statement: request.Statement,
		MaxScore:  request.MaxScore,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapQuestion(*updated))
}

func (h *QuestionHttpHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.questionSrvc.DeleteQuestion(r.Context(), questionUUID); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"message": "Question deleted successfully"})
}

func (h *QuestionHttpHandler) AddTestCase(w http.ResponseWriter, r *http.Request) {
	type addRequest struct {
		Input    string `json:"input"`
		Expected string `json:"expected"`
	}

	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var request addRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.questionSrvc.AddTestCase(r.Context(), question.AddTestCaseParams{
		QuestionUUID: questionUUID,
		Input:        request.Input,
		Expected:     request.Expected,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJsonStatus(w, mapTestCase(*created), http.StatusCreated)
}

func (h *QuestionHttpHandler) ListTestCases(w http.ResponseWriter, r *http.Request) {
	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	tests, err := h.questionSrvc.ListTestCases(r.Context(), questionUUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]TestCase, 0, len(tests))
	for _, tc := range tests {
		response = append(response, mapTestCase(tc))
	}
	httpjson.WriteSuccessJson(w, response)
}

func (h *QuestionHttpHandler) DeleteTestCase(w http.ResponseWriter, r *http.Request) {
	questionUUID, err := uuid.Parse(chi.URLParam(r, "questionUUID"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	seqNo, err := strconv.Atoi(chi.URLParam(r, "seqNo"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.questionSrvc.DeleteTestCase(r.Context(), questionUUID, seqNo); err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"message": "Test case deleted successfully"})
}
