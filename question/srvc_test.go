package question_test

import (
	"context"
	"errors"
	"testing"

	"github.com/codeclash/backend/question"
	"github.com/codeclash/backend/srvcerror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuestionSrvc() *question.QuestionSrvc {
	return question.NewQuestionSrvc(question.NewInMemQuestionRepo(), question.NewInMemTestCaseRepo())
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	var srvcErr *srvcerror.Error
	require.True(t, errors.As(err, &srvcErr), "expected srvcerror.Error, got %v", err)
	assert.Equal(t, code, srvcErr.ErrorCode())
}

func createQuestion(t *testing.T, srvc *question.QuestionSrvc, challengeUUID uuid.UUID) *question.Question {
	t.Helper()
	q, err := srvc.CreateQuestion(context.Background(), question.CreateQuestionParams{
		ChallengeUUID: challengeUUID,
		Title:         "Sum of two numbers",
		Statement:     "Read two integers and print their sum.",
		MaxScore:      10,
	})
	require.NoError(t, err)
	return q
}

func TestCreateQuestionValidation(t *testing.T) {
	srvc := newTestQuestionSrvc()

	_, err := srvc.CreateQuestion(context.Background(), question.CreateQuestionParams{
		ChallengeUUID: uuid.New(),
		Title:         "",
		MaxScore:      10,
	})
	assertErrCode(t, err, question.ErrCodeTitleEmpty)

	_, err = srvc.CreateQuestion(context.Background(), question.CreateQuestionParams{
		ChallengeUUID: uuid.New(),
		Title:         "Sum",
		MaxScore:      0,
	})
	assertErrCode(t, err, question.ErrCodeMaxScoreNotPositive)
}

func TestListQuestionsByChallenge(t *testing.T) {
	srvc := newTestQuestionSrvc()
	challengeUUID := uuid.New()

	createQuestion(t, srvc, challengeUUID)
	createQuestion(t, srvc, challengeUUID)
	createQuestion(t, srvc, uuid.New())

	questions, err := srvc.ListQuestionsByChallenge(context.Background(), challengeUUID)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestUpdateQuestion(t *testing.T) {
	srvc := newTestQuestionSrvc()
	q := createQuestion(t, srvc, uuid.New())

	newScore := 25
	updated, err := srvc.UpdateQuestion(context.Background(), q.UUID, question.UpdateQuestionParams{
		MaxScore: &newScore,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.MaxScore)
	assert.Equal(t, q.Title, updated.Title)

	badScore := -1
	_, err = srvc.UpdateQuestion(context.Background(), q.UUID, question.UpdateQuestionParams{
		MaxScore: &badScore,
	})
	assertErrCode(t, err, question.ErrCodeMaxScoreNotPositive)
}

func TestAddTestCaseAssignsSequenceNumbers(t *testing.T) {
	srvc := newTestQuestionSrvc()
	q := createQuestion(t, srvc, uuid.New())

	first, err := srvc.AddTestCase(context.Background(), question.AddTestCaseParams{
		QuestionUUID: q.UUID, Input: "3 5", Expected: "8",
	})
	require.NoError(t, err)
	second, err := srvc.AddTestCase(context.Background(), question.AddTestCaseParams{
		QuestionUUID: q.UUID, Input: "5 7", Expected: "12",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.SeqNo)
	assert.Equal(t, 2, second.SeqNo)

	tests, err := srvc.ListTestCases(context.Background(), q.UUID)
	require.NoError(t, err)
	require.Len(t, tests, 2)

	// retrieval order equals creation order
	assert.Equal(t, "3 5", tests[0].Input)
	assert.Equal(t, "5 7", tests[1].Input)
}

func TestAddTestCaseUnknownQuestion(t *testing.T) {
	srvc := newTestQuestionSrvc()

	_, err := srvc.AddTestCase(context.Background(), question.AddTestCaseParams{
		QuestionUUID: uuid.New(), Input: "3 5", Expected: "8",
	})
	assertErrCode(t, err, question.ErrCodeQuestionNotFound)
}

func TestDeleteTestCase(t *testing.T) {
	srvc := newTestQuestionSrvc()
	q := createQuestion(t, srvc, uuid.New())

	_, err := srvc.AddTestCase(context.Background(), question.AddTestCaseParams{
		QuestionUUID: q.UUID, Input: "3 5", Expected: "8",
	})
	require.NoError(t, err)

	err = srvc.DeleteTestCase(context.Background(), q.UUID, 2)
	assertErrCode(t, err, question.ErrCodeTestCaseNotFound)

	require.NoError(t, srvc.DeleteTestCase(context.Background(), q.UUID, 1))

	tests, err := srvc.ListTestCases(context.Background(), q.UUID)
	require.NoError(t, err)
	assert.Empty(t, tests)
}

func TestDeleteQuestionCascadesTestCases(t *testing.T) {
	srvc := newTestQuestionSrvc()
	q := createQuestion(t, srvc, uuid.New())

	_, err := srvc.AddTestCase(context.Background(), question.AddTestCaseParams{
		QuestionUUID: q.UUID, Input: "3 5", Expected: "8",
	})
	require.NoError(t, err)

	require.NoError(t, srvc.DeleteQuestion(context.Background(), q.UUID))

	_, err = srvc.GetQuestion(context.Background(), q.UUID)
	assertErrCode(t, err, question.ErrCodeQuestionNotFound)

	tests, err := srvc.ListTestCases(context.Background(), q.UUID)
	require.NoError(t, err)
	assert.Empty(t, tests)
}
