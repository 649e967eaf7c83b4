package subm

import (
	"net/http"

	"github.com/codeclash/backend/srvcerror"
)

const ErrCodeMissingFields = "submission_fields_missing"

func newErrMissingFields() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingFields,
		"challenge, question, code and language are all required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNoTestCases = "no_test_cases"

func newErrNoTestCases() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoTestCases,
		"no test cases found for this question",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionFailed = "submission_failed"

func newErrSubmissionFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionFailed,
		"submission failed",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
