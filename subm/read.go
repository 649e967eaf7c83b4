package subm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func (s *SubmSrvc) GetSubmission(ctx context.Context, submUUID uuid.UUID) (*Submission, error) {
	row, err := s.submRepo.Get(ctx, submUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting submission: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrSubmissionNotFound()
	}

	return row.toSubmission(), nil
}

// ListUserSubmissions returns the user's submissions, newest first.
func (s *SubmSrvc) ListUserSubmissions(ctx context.Context, userUUID uuid.UUID) ([]Submission, error) {
	rows, err := s.submRepo.ListByUser(ctx, userUUID)
	if err != nil {
		errMsg := fmt.Errorf("error listing submissions: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	subs := make([]Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, *row.toSubmission())
	}
	return subs, nil
}

// ListForChallengeQuestion returns the user's submissions for one question
// of one challenge, newest first.
func (s *SubmSrvc) ListForChallengeQuestion(ctx context.Context, userUUID, challengeUUID, questionUUID uuid.UUID) ([]Submission, error) {
	all, err := s.ListUserSubmissions(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	subs := make([]Submission, 0)
	for _, sub := range all {
		if sub.ChallengeUUID == challengeUUID && sub.QuestionUUID == questionUUID {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

// GetProgress returns the user's cumulative progress for one challenge.
// Users with no full pass yet get an empty progress record.
func (s *SubmSrvc) GetProgress(ctx context.Context, userUUID, challengeUUID uuid.UUID) (*Progress, error) {
	row, err := s.progressRepo.Get(ctx, userUUID, challengeUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting progress: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return &Progress{
			UserUUID:        userUUID,
			ChallengeUUID:   challengeUUID,
			SolvedQuestions: []string{},
		}, nil
	}

	return row.toProgress(), nil
}

// DeleteSubmission removes a submission record. Administrative deletion is
// the only way a submission ever goes away.
func (s *SubmSrvc) DeleteSubmission(ctx context.Context, submUUID uuid.UUID) error {
	row, err := s.submRepo.Get(ctx, submUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting submission: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return newErrSubmissionNotFound()
	}

	if err := s.submRepo.Delete(ctx, submUUID); err != nil {
		errMsg := fmt.Errorf("error deleting submission: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	return nil
}
