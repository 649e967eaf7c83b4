package http

import (
	"time"

	"github.com/codeclash/backend/auth"
	"github.com/codeclash/backend/question"
	"github.com/go-chi/chi/v5"
)

type QuestionHttpHandler struct {
	questionSrvc *question.QuestionSrvc
}

func NewQuestionHttpHandler(questionSrvc *question.QuestionSrvc) *QuestionHttpHandler {
	return &QuestionHttpHandler{questionSrvc: questionSrvc}
}

func (h *QuestionHttpHandler) RegisterRoutes(r chi.Router) {
	r.Get("/questions/{questionUUID}", h.Get)
	r.Get("/challenges/{challengeUUID}/questions", h.ListByChallenge)

	// Test cases stay private to admins; leaking them would let users
	// hardcode expected outputs.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)
		r.Post("/questions", h.Create)
		r.Put("/questions/{questionUUID}", h.Update)
		r.Delete("/questions/{questionUUID}", h.Delete)
		r.Post("/questions/{questionUUID}/tests", h.AddTestCase)
		r.Get("/questions/{questionUUID}/tests", h.ListTestCases)
		r.Delete("/questions/{questionUUID}/tests/{seqNo}", h.DeleteTestCase)
	})
}

type Question struct {
	UUID          string `json:"uuid"`
	ChallengeUUID string `json:"challenge_uuid"`
	Title         string `json:"title"`
	Statement     string `json:"statement"`
	MaxScore      int    `json:"max_score"`
	CreatedAt     string `json:"created_at"`
}

type TestCase struct {
	QuestionUUID string `json:"question_uuid"`
	SeqNo        int    `json:"seq_no"`
	Input        string `json:"input"`
	Expected     string `json:"expected"`
}

func mapQuestion(q question.Question) Question {
	return Question{
		UUID:          q.UUID.String(),
		ChallengeUUID: q.ChallengeUUID.String(),
		Title:         q.Title,
		Statement:     q.Statement,
		MaxScore:      q.MaxScore,
		CreatedAt:     q.CreatedAt.Format(time.RFC3339),
	}
}

func mapTestCase(tc question.TestCase) TestCase {
	return TestCase{
		QuestionUUID: tc.QuestionUUID.String(),
		SeqNo:        tc.SeqNo,
		Input:        tc.Input,
		Expected:     tc.Expected,
	}
}
