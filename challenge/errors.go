package challenge

import (
	"net/http"

	"github.com/codeclash/backend/srvcerror"
)

const ErrCodeChallengeNotFound = "challenge_not_found"

func newErrChallengeNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeChallengeNotFound,
		"challenge not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTitleEmpty = "challenge_title_empty"

func newErrTitleEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleEmpty,
		"challenge title must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTitleTooLong = "challenge_title_too_long"

func newErrTitleTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleTooLong,
		"challenge title is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeNotChallengeOwner = "not_challenge_owner"

func newErrNotChallengeOwner() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNotChallengeOwner,
		"only the admin who created the challenge may modify it",
	).SetHttpStatusCode(http.StatusForbidden)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
