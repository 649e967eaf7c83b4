package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/codeclash/backend/logger"
	"github.com/codeclash/backend/planglist"
	"github.com/google/uuid"
)

type CreateSubmissionParams struct {
	UserUUID      uuid.UUID
	ChallengeUUID uuid.UUID
	QuestionUUID  uuid.UUID
	Code          string
	LangID        string
}

// CreateSubmissionResult carries the recorded submission together with the
// per-test-case results of this evaluation. The verdict is transient; only
// the submission record persists.
type CreateSubmissionResult struct {
	Submission Submission
	Verdict    Verdict
}

// CreateSubmission runs the full evaluation pipeline for one attempt:
// resolve language and question, pull the ordered test cases, evaluate with
// early exit, score idempotently, persist the attempt, and on a first full
// pass upsert the user's challenge progress.
func (s *SubmSrvc) CreateSubmission(ctx context.Context, p CreateSubmissionParams) (*CreateSubmissionResult, error) {
	if p.ChallengeUUID == uuid.Nil || p.QuestionUUID == uuid.Nil || p.Code == "" || p.LangID == "" {
		return nil, newErrMissingFields()
	}

	lang, err := planglist.GetProgrammingLanguageById(p.LangID)
	if err != nil {
		return nil, err
	}

	q, err := s.questions.GetQuestion(ctx, p.QuestionUUID)
	if err != nil {
		return nil, err
	}

	tests, err := s.questions.ListTestCases(ctx, p.QuestionUUID)
	if err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return nil, newErrNoTestCases()
	}

	priorPass, err := s.submRepo.HasPassed(ctx, p.UserUUID, p.ChallengeUUID, p.QuestionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error checking prior submissions: %w", err)
		return nil, newErrSubmissionFailed().SetDebug(errMsg)
	}

	verdict := s.evaluate(ctx, p.Code, *lang, tests)

	status := StatusFail
	if verdict.AllPassed {
		status = StatusPass
	}

	score := ScoreResult{}
	switch {
	case priorPass:
		score.AlreadyEarned = true
	case verdict.AllPassed:
		score.Awarded = q.MaxScore
	}

	createdAt := time.Now()
	row := &SubmissionRow{
		Uuid:          uuid.New().String(),
		UserUuid:      p.UserUUID.String(),
		UnixTime:      createdAt.UnixNano(),
		ChallengeUuid: p.ChallengeUUID.String(),
		QuestionUuid:  p.QuestionUUID.String(),
		Code:          p.Code,
		LangId:        p.LangID,
		Status:        status,
		Score:         score.Awarded,
		AlreadyEarned: score.AlreadyEarned,
		CreatedAt:     createdAt,
	}

	// Every attempt is recorded, repeats and failures included. A verdict
	// without a durable record is a failed submission attempt.
	if err := s.submRepo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving submission: %w", err)
		return nil, newErrSubmissionFailed().SetDebug(errMsg)
	}

	if verdict.AllPassed && !priorPass {
		err := s.progressRepo.ApplyFirstPass(ctx,
			p.UserUUID, p.ChallengeUUID, p.QuestionUUID, q.MaxScore, createdAt)
		if err != nil {
			errMsg := fmt.Errorf("error updating challenge progress: %w", err)
			return nil, newErrSubmissionFailed().SetDebug(errMsg)
		}
	}

	logger.FromContext(ctx).Info("submission evaluated",
		"subm_uuid", row.Uuid,
		"user_uuid", row.UserUuid,
		"status", status,
		"passed", verdict.PassedCount,
		"total", verdict.TotalCount)

	return &CreateSubmissionResult{
		Submission: *row.toSubmission(),
		Verdict:    verdict,
	}, nil
}
