package subm

import (
	"context"

	"github.com/codeclash/backend/question"
	"github.com/google/uuid"
)

// QuestionSource provides the scoring metadata and the ordered test case
// list the evaluation pipeline needs. Satisfied by question.QuestionSrvc.
type QuestionSource interface {
	GetQuestion(ctx context.Context, questionUUID uuid.UUID) (*question.Question, error)
	ListTestCases(ctx context.Context, questionUUID uuid.UUID) ([]question.TestCase, error)
}

type SubmSrvc struct {
	runner    TestCaseRunner
	questions QuestionSource

	submRepo     SubmRepo
	progressRepo ProgressRepo
}

func NewSubmSrvc(
	runner TestCaseRunner,
	questions QuestionSource,
	submRepo SubmRepo,
	progressRepo ProgressRepo,
) *SubmSrvc {
	return &SubmSrvc{
		runner:       runner,
		questions:    questions,
		submRepo:     submRepo,
		progressRepo: progressRepo,
	}
}
