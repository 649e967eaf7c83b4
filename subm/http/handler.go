package http

import (
	"time"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/subm"
	"github.com/go-chi/chi/v5"
)

type SubmHttpHandler struct {
	submSrvc *subm.SubmSrvc
}

func NewSubmHttpHandler(submSrvc *subm.SubmSrvc) *SubmHttpHandler {
	return &SubmHttpHandler{submSrvc: submSrvc}
}

func (h *SubmHttpHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Post("/submissions", h.Create)
		r.Get("/submissions", h.ListOwn)
		r.Get("/submissions/{submUUID}", h.Get)
		r.Get("/challenges/{challengeUUID}/questions/{questionUUID}/submissions", h.ListForChallengeQuestion)
		r.Get("/challenges/{challengeUUID}/progress", h.GetProgress)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Delete("/submissions/{submUUID}", h.Delete)
	})
}

// Score is the tagged score of one submission. AlreadyEarned marks repeat
// passes that award no new score.
type Score struct {
	Awarded       int  `json:"awarded"`
	AlreadyEarned bool `json:"already_earned"`
}

type Submission struct {
	UUID          string `json:"uuid"`
	UserUUID      string `json:"user_uuid"`
	ChallengeUUID string `json:"challenge_uuid"`
	QuestionUUID  string `json:"question_uuid"`
	Code          string `json:"code"`
	LangID        string `json:"lang_id"`
	Status        string `json:"status"`
	Score         Score  `json:"score"`
	CreatedAt     string `json:"created_at"`
}

type TestCaseResult struct {
	Input    string  `json:"input"`
	Expected string  `json:"expected"`
	Actual   string  `json:"actual"`
	ErrMsg   *string `json:"error,omitempty"`
	Passed   bool    `json:"passed"`
}

type Progress struct {
	UserUUID        string   `json:"user_uuid"`
	ChallengeUUID   string   `json:"challenge_uuid"`
	SolvedQuestions []string `json:"solved_questions"`
	Score           int      `json:"score"`
	LastUpdated     string   `json:"last_updated"`
}

func mapSubmission(s subm.Submission) Submission {
	return Submission{
		UUID:          s.UUID.String(),
		UserUUID:      s.UserUUID.String(),
		ChallengeUUID: s.ChallengeUUID.String(),
		QuestionUUID:  s.QuestionUUID.String(),
		Code:          s.Code,
		LangID:        s.LangID,
		Status:        s.Status,
		Score: Score{
			Awarded:       s.Score.Awarded,
			AlreadyEarned: s.Score.AlreadyEarned,
		},
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func mapResults(results []subm.EvalResult) []TestCaseResult {
	mapped := make([]TestCaseResult, 0, len(results))
	for _, r := range results {
		mapped = append(mapped, TestCaseResult{
			Input:    r.Input,
			Expected: r.Expected,
			Actual:   r.Actual,
			ErrMsg:   r.ErrMsg,
			Passed:   r.Passed,
		})
	}
	return mapped
}

func mapProgress(p subm.Progress) Progress {
	lastUpdated := ""
	if !p.LastUpdated.IsZero() {
		lastUpdated = p.LastUpdated.Format(time.RFC3339)
	}
	solved := p.SolvedQuestions
	if solved == nil {
		solved = []string{}
	}
	return Progress{
		UserUUID:        p.UserUUID.String(),
		ChallengeUUID:   p.ChallengeUUID.String(),
		SolvedQuestions: solved,
		Score:           p.Score,
		LastUpdated:     lastUpdated,
	}
}
