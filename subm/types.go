package subm

import (
	"context"
	"time"

	"github.com/codeclash/backend/execsrvc"
	"github.com/codeclash/backend/planglist"
	"github.com/google/uuid"
)

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// EvalResult is the outcome of one executed test case.
type EvalResult struct {
	Input    string
	Expected string
	Actual   string
	ErrMsg   *string
	Passed   bool
}

// Verdict aggregates the outcome of evaluating one submission. Under the
// early-exit protocol Results holds an entry per executed test case only;
// later cases that were never reached do not appear.
type Verdict struct {
	TotalCount  int
	PassedCount int
	FirstErr    *string
	Results     []EvalResult
	AllPassed   bool
}

// ScoreResult is a tagged score value. AlreadyEarned marks submissions for
// question/user pairs that had a prior full pass; no numeric score is
// re-awarded for those.
type ScoreResult struct {
	Awarded       int
	AlreadyEarned bool
}

// Submission is one recorded evaluation attempt. Immutable once created.
type Submission struct {
	UUID          uuid.UUID
	UserUUID      uuid.UUID
	ChallengeUUID uuid.UUID
	QuestionUUID  uuid.UUID
	Code          string
	LangID        string
	Status        string
	Score         ScoreResult
	CreatedAt     time.Time
}

// Progress is the cumulative per (user, challenge) state.
type Progress struct {
	UserUUID        uuid.UUID
	ChallengeUUID   uuid.UUID
	SolvedQuestions []string
	Score           int
	LastUpdated     time.Time
}

// TestCaseRunner executes a submission against one test case and classifies
// the outcome. Satisfied by execsrvc.PistonClient; tests substitute a fake.
type TestCaseRunner interface {
	RunTestCase(ctx context.Context, code string, lang planglist.ProgrammingLang, input, expected string) execsrvc.TestRunResult
}
