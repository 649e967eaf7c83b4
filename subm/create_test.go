package subm

import (
	"context"
	"errors"
	"testing"

	"github.com/codeclash/backend/execsrvc"
	"github.com/codeclash/backend/question"
	"github.com/codeclash/backend/srvcerror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestQuestion seeds a question with the given test cases through the
// real question service backed by in-memory repos.
func newTestQuestion(t *testing.T, maxScore int, pairs ...[2]string) (*question.QuestionSrvc, *question.Question) {
	t.Helper()
	srvc := question.NewQuestionSrvc(question.NewInMemQuestionRepo(), question.NewInMemTestCaseRepo())

	q, err := srvc.CreateQuestion(context.Background(), question.CreateQuestionParams{
		ChallengeUUID: uuid.New(),
		Title:         "Sum of two numbers",
		Statement:     "Read two integers and print their sum.",
		MaxScore:      maxScore,
	})
	require.NoError(t, err)

	for _, p := range pairs {
		_, err := srvc.AddTestCase(context.Background(), question.AddTestCaseParams{
			QuestionUUID: q.UUID,
			Input:        p[0],
			Expected:     p[1],
		})
		require.NoError(t, err)
	}
	return srvc, q
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	var srvcErr *srvcerror.Error
	require.True(t, errors.As(err, &srvcErr), "expected srvcerror.Error, got %v", err)
	assert.Equal(t, code, srvcErr.ErrorCode())
}

func TestCreateSubmissionFullPass(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10, [2]string{"3 5", "8"}, [2]string{"5 7", "12"})
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		passResult("8"),
		passResult("12"),
	}}
	srvc, submRepo, progressRepo := newTestSubmSrvc(runner, questionSrvc)

	userUUID := uuid.New()
	res, err := srvc.CreateSubmission(context.Background(), CreateSubmissionParams{
		UserUUID:      userUUID,
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "a, b = int(input()), int(input()); print(a+b)",
		LangID:        "python",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPass, res.Submission.Status)
	assert.Equal(t, 10, res.Submission.Score.Awarded)
	assert.False(t, res.Submission.Score.AlreadyEarned)
	assert.True(t, res.Verdict.AllPassed)
	assert.Equal(t, 2, res.Verdict.PassedCount)

	// the attempt is durably recorded
	saved, err := submRepo.Get(context.Background(), res.Submission.UUID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, StatusPass, saved.Status)

	// first full pass credits challenge progress
	progress, err := progressRepo.Get(context.Background(), userUUID, q.ChallengeUUID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, 10, progress.Score)
	assert.Equal(t, []string{q.UUID.String()}, progress.SolvedQuestions)
}

func TestCreateSubmissionRepeatPassAlreadyEarned(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10, [2]string{"3 5", "8"})
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		passResult("8"),
		passResult("8"),
	}}
	srvc, _, progressRepo := newTestSubmSrvc(runner, questionSrvc)

	userUUID := uuid.New()
	params := CreateSubmissionParams{
		UserUUID:      userUUID,
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "print(sum(int(input()) for _ in range(2)))",
		LangID:        "python",
	}

	first, err := srvc.CreateSubmission(context.Background(), params)
	require.NoError(t, err)
	require.Equal(t, 10, first.Submission.Score.Awarded)

	second, err := srvc.CreateSubmission(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, StatusPass, second.Submission.Status)
	assert.Equal(t, 0, second.Submission.Score.Awarded)
	assert.True(t, second.Submission.Score.AlreadyEarned)

	// cumulative score is credited exactly once
	progress, err := progressRepo.Get(context.Background(), userUUID, q.ChallengeUUID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, 10, progress.Score)
	assert.Len(t, progress.SolvedQuestions, 1)
}

func TestCreateSubmissionFailAwardsNothing(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10, [2]string{"3 5", "8"})
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		failResult("7", execsrvc.ErrMsgOutputMismatch),
	}}
	srvc, submRepo, progressRepo := newTestSubmSrvc(runner, questionSrvc)

	userUUID := uuid.New()
	res, err := srvc.CreateSubmission(context.Background(), CreateSubmissionParams{
		UserUUID:      userUUID,
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "print(7)",
		LangID:        "python",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusFail, res.Submission.Status)
	assert.Equal(t, 0, res.Submission.Score.Awarded)
	assert.False(t, res.Submission.Score.AlreadyEarned)

	// failed attempts are recorded too
	saved, err := submRepo.Get(context.Background(), res.Submission.UUID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, StatusFail, saved.Status)

	progress, err := progressRepo.Get(context.Background(), userUUID, q.ChallengeUUID)
	require.NoError(t, err)
	assert.Nil(t, progress)
}

func TestCreateSubmissionFailAfterPassStillAlreadyEarned(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10, [2]string{"3 5", "8"})
	runner := &scriptedRunner{results: []execsrvc.TestRunResult{
		passResult("8"),
		failResult("7", execsrvc.ErrMsgOutputMismatch),
	}}
	srvc, _, progressRepo := newTestSubmSrvc(runner, questionSrvc)

	userUUID := uuid.New()
	params := CreateSubmissionParams{
		UserUUID:      userUUID,
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "print(8)",
		LangID:        "python",
	}

	_, err := srvc.CreateSubmission(context.Background(), params)
	require.NoError(t, err)

	second, err := srvc.CreateSubmission(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, StatusFail, second.Submission.Status)
	assert.True(t, second.Submission.Score.AlreadyEarned)
	assert.Equal(t, 0, second.Submission.Score.Awarded)

	progress, err := progressRepo.Get(context.Background(), userUUID, q.ChallengeUUID)
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Equal(t, 10, progress.Score)
}

func TestCreateSubmissionNoTestCases(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10)
	runner := &scriptedRunner{}
	srvc, _, _ := newTestSubmSrvc(runner, questionSrvc)

	_, err := srvc.CreateSubmission(context.Background(), CreateSubmissionParams{
		UserUUID:      uuid.New(),
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "print(8)",
		LangID:        "python",
	})

	assertErrCode(t, err, ErrCodeNoTestCases)
	assert.Equal(t, 0, runner.calls)
}

func TestCreateSubmissionMissingFields(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10, [2]string{"3 5", "8"})
	srvc, _, _ := newTestSubmSrvc(&scriptedRunner{}, questionSrvc)

	_, err := srvc.CreateSubmission(context.Background(), CreateSubmissionParams{
		UserUUID:      uuid.New(),
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "",
		LangID:        "python",
	})

	assertErrCode(t, err, ErrCodeMissingFields)
}

func TestCreateSubmissionUnknownLanguage(t *testing.T) {
	questionSrvc, q := newTestQuestion(t, 10, [2]string{"3 5", "8"})
	srvc, _, _ := newTestSubmSrvc(&scriptedRunner{}, questionSrvc)

	_, err := srvc.CreateSubmission(context.Background(), CreateSubmissionParams{
		UserUUID:      uuid.New(),
		ChallengeUUID: q.ChallengeUUID,
		QuestionUUID:  q.UUID,
		Code:          "print(8)",
		LangID:        "cobol",
	})

	assert.Error(t, err)
}

func TestCreateSubmissionUnknownQuestion(t *testing.T) {
	questionSrvc, _ := newTestQuestion(t, 10, [2]string{"3 5", "8"})
	srvc, _, _ := newTestSubmSrvc(&scriptedRunner{}, questionSrvc)

	_, err := srvc.CreateSubmission(context.Background(), CreateSubmissionParams{
		UserUUID:      uuid.New(),
		ChallengeUUID: uuid.New(),
		QuestionUUID:  uuid.New(),
		Code:          "print(8)",
		LangID:        "python",
	})

	assert.Error(t, err)
}
