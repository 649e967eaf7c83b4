package question

import (
	"net/http"

	"github.com/codeclash/backend/srvcerror"
)

const ErrCodeQuestionNotFound = "question_not_found"

func newErrQuestionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeQuestionNotFound,
		"question not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTestCaseNotFound = "test_case_not_found"

func newErrTestCaseNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTestCaseNotFound,
		"test case not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTitleEmpty = "question_title_empty"

func newErrTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleEmpty,
		"question title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeMaxScoreNotPositive = "max_score_not_positive"

func newErrMaxScoreNotPositive() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMaxScoreNotPositive,
		"question max score must be positive",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
