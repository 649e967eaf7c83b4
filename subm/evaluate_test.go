package subm

import (
	"context"
	"testing"

	"github.com/codeclash/backend/execsrvc"
	"github.com/codeclash/backend/planglist"
	"github.com/codeclash/backend/question"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner replays canned per-test-case outcomes in call order and
// counts how many calls it received.
type scriptedRunner struct {
	results []execsrvc.TestRunResult
	calls   int
}

func (r *scriptedRunner) RunTestCase(ctx context.Context, code string, lang planglist.ProgrammingLang, input, expected string) execsrvc.TestRunResult {
	res := r.results[r.calls]
	r.calls++
	res.Input = input
	res.Expected = expected
	return res
}

func passResult(actual string) execsrvc.TestRunResult {
	return execsrvc.TestRunResult{Actual: actual, Passed: true}
}

func failResult(actual, errMsg string) execsrvc.TestRunResult {
	return execsrvc.TestRunResult{Actual: actual, ErrMsg: &errMsg, Passed: false}
}

func newTestSubmSrvc(runner TestCaseRunner, questions QuestionSource) (*SubmSrvc, *InMemSubmRepo, *InMemProgressRepo) {
	submRepo := NewInMemSubmRepo()
	progressRepo := NewInMemProgressRepo()
	return NewSubmSrvc(runner, questions, submRepo, progressRepo), submRepo, progressRepo
}

func testCases(questionUUID uuid.UUID, pairs ...[2]string) []question.TestCase {
	tests := make([]question.TestCase, 0, len(pairs))
	for i, p := range pairs {
		tests = append(tests, question.TestCase{
			QuestionUUID: questionUUID,
			SeqNo:        i + 1,
			Input:        p[0],
			Expected:     p[1],
		})
	}
	return tests
}

func TestEvaluateAllPass(t *testing.T) {
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		passResult("8"),
		passResult("12"),
		passResult("0"),
	}}
	srvc, _, _ := newTestSubmSrvc(runner, nil)

	lang := planglist.ProgrammingLang{ID: "python"}
	tests := testCases(uuid.New(), [2]string{"3 5", "8"}, [2]string{"5 7", "12"}, [2]string{"0 0", "0"})

	verdict := srvc.evaluate(context.Background(), "code", lang, tests)

	assert.True(t, verdict.AllPassed)
	assert.Equal(t, 3, verdict.TotalCount)
	assert.Equal(t, 3, verdict.PassedCount)
	assert.Nil(t, verdict.FirstErr)
	assert.Len(t, verdict.Results, 3)
	assert.Equal(t, 3, runner.calls)
}

func TestEvaluateEarlyExitOnFirstFailure(t *testing.T) {
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		passResult("8"),
		failResult("13", execsrvc.ErrMsgOutputMismatch),
		passResult("0"),
	}}
	srvc, _, _ := newTestSubmSrvc(runner, nil)

	lang := planglist.ProgrammingLang{ID: "python"}
	tests := testCases(uuid.New(), [2]string{"3 5", "8"}, [2]string{"5 7", "12"}, [2]string{"0 0", "0"})

	verdict := srvc.evaluate(context.Background(), "code", lang, tests)

	assert.False(t, verdict.AllPassed)
	assert.Equal(t, 3, verdict.TotalCount)
	assert.Equal(t, 1, verdict.PassedCount)
	require.NotNil(t, verdict.FirstErr)
	assert.Equal(t, execsrvc.ErrMsgOutputMismatch, *verdict.FirstErr)

	// the third case was never executed
	assert.Len(t, verdict.Results, 2)
	assert.Equal(t, 2, runner.calls)

	assert.True(t, verdict.Results[0].Passed)
	assert.False(t, verdict.Results[1].Passed)
	assert.Equal(t, "13", verdict.Results[1].Actual)
}

func TestEvaluateFirstCaseFails(t *testing.T) {
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		failResult("", execsrvc.ErrMsgExecutionFailed),
	}}
	srvc, _, _ := newTestSubmSrvc(runner, nil)

	lang := planglist.ProgrammingLang{ID: "python"}
	tests := testCases(uuid.New(), [2]string{"3 5", "8"}, [2]string{"5 7", "12"})

	verdict := srvc.evaluate(context.Background(), "code", lang, tests)

	assert.False(t, verdict.AllPassed)
	assert.Equal(t, 0, verdict.PassedCount)
	assert.Len(t, verdict.Results, 1)
	assert.Equal(t, 1, runner.calls)
}

func TestEvaluateZeroTestCasesVacuousPass(t *testing.T) {
	runner := &scriptedRunner{}
	srvc, _, _ := newTestSubmSrvc(runner, nil)

	lang := planglist.ProgrammingLang{ID: "python"}
	verdict := srvc.evaluate(context.Background(), "code", lang, nil)

	assert.True(t, verdict.AllPassed)
	assert.Equal(t, 0, verdict.TotalCount)
	assert.Equal(t, 0, verdict.PassedCount)
	assert.Empty(t, verdict.Results)
	assert.Equal(t, 0, runner.calls)
}
