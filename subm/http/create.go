package http

import (
	"encoding/json"
	"net/http"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/httpjson"
	"github.com/codeclash/backend/subm"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
)

// Create accepts a submission, evaluates it and records the attempt. A
// durably written attempt is always 201; the evaluation verdict travels in
// the body rather than in the HTTP status.
func (h *SubmHttpHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type createRequest struct {
		ChallengeUUID string `json:"challenge_uuid"`
		QuestionUUID  string `json:"question_uuid"`
		Code          string `json:"code"`
		LangID        string `json:"lang_id"`
	}

	type createResponse struct {
		Status          string           `json:"status"`
		Message         string           `json:"message"`
		Submission      Submission       `json:"submission"`
		TestCaseResults []TestCaseResult `json:"test_case_results"`
	}

	claims, _ := auth.ClaimsFromContext(r.Context())
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
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
	questionUUID, err := uuid.Parse(request.QuestionUUID)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res, err := h.submSrvc.CreateSubmission(r.Context(), subm.CreateSubmissionParams{
		UserUUID:      userUUID,
		ChallengeUUID: challengeUUID,
		QuestionUUID:  questionUUID,
		Code:          request.Code,
		LangID:        request.LangID,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	message := "Solution submitted. Some test cases failed."
	if res.Verdict.AllPassed {
		message = "Solution submitted successfully. All test cases passed."
	}

	httpjson.WriteSuccessJsonStatus(w, createResponse{
		Status:          res.Submission.Status,
		Message:         message,
		Submission:      mapSubmission(res.Submission),
		TestCaseResults: mapResults(res.Verdict.Results),
	}, http.StatusCreated)
}
