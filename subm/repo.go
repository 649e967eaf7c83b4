package subm

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubmissionRow is the persisted submission document.
type SubmissionRow struct {
	Uuid          string    `dynamo:"uuid,hash"` // Primary key
	UserUuid      string    `dynamo:"user_uuid" index:"user_uuid-index,hash"`
	UnixTime      int64     `dynamo:"unix_time" index:"user_uuid-index,range"`
	ChallengeUuid string    `dynamo:"challenge_uuid"`
	QuestionUuid  string    `dynamo:"question_uuid"`
	Code          string    `dynamo:"code"`
	LangId        string    `dynamo:"lang_id"`
	Status        string    `dynamo:"status"`
	Score         int       `dynamo:"score"`
	AlreadyEarned bool      `dynamo:"already_earned"`
	CreatedAt     time.Time `dynamo:"created_at"`
}

// ProgressRow is the persisted per (user, challenge) progress document.
type ProgressRow struct {
	UserUuid        string    `dynamo:"user_uuid,hash"` // Primary key
	ChallengeUuid   string    `dynamo:"challenge_uuid,range"`
	SolvedQuestions []string  `dynamo:"solved_questions,set"`
	Score           int       `dynamo:"score"`
	LastUpdated     time.Time `dynamo:"last_updated"`
}

// SubmRepo abstracts the submission table. Get returns (nil, nil) when the
// submission does not exist.
type SubmRepo interface {
	Save(ctx context.Context, row *SubmissionRow) error
	Get(ctx context.Context, uuid uuid.UUID) (*SubmissionRow, error)
	// HasPassed reports whether a submission with status pass exists for
	// the (user, challenge, question) triple.
	HasPassed(ctx context.Context, userUUID, challengeUUID, questionUUID uuid.UUID) (bool, error)
	// ListByUser returns the user's submissions, newest first.
	ListByUser(ctx context.Context, userUUID uuid.UUID) ([]*SubmissionRow, error)
	Delete(ctx context.Context, uuid uuid.UUID) error
}

// ProgressRepo abstracts per (user, challenge) progress state.
type ProgressRepo interface {
	// ApplyFirstPass atomically records the first full pass of a question:
	// add the question to the solved set, increment the cumulative score and
	// stamp the update time, creating the record if absent. The write is a
	// no-op when the question is already in the solved set, so concurrent
	// first-pass submissions cannot double-credit score.
	ApplyFirstPass(ctx context.Context, userUUID, challengeUUID uuid.UUID, questionUUID uuid.UUID, points int, now time.Time) error
	// Get returns (nil, nil) when no progress exists yet.
	Get(ctx context.Context, userUUID, challengeUUID uuid.UUID) (*ProgressRow, error)
}

func (r *SubmissionRow) toSubmission() *Submission {
	id, _ := uuid.Parse(r.Uuid)
	userID, _ := uuid.Parse(r.UserUuid)
	challengeID, _ := uuid.Parse(r.ChallengeUuid)
	questionID, _ := uuid.Parse(r.QuestionUuid)
	return &Submission{
		UUID:          id,
		UserUUID:      userID,
		ChallengeUUID: challengeID,
		QuestionUUID:  questionID,
		Code:          r.Code,
		LangID:        r.LangId,
		Status:        r.Status,
		Score: ScoreResult{
			Awarded:       r.Score,
			AlreadyEarned: r.AlreadyEarned,
		},
		CreatedAt: r.CreatedAt,
	}
}

func (r *ProgressRow) toProgress() *Progress {
	userID, _ := uuid.Parse(r.UserUuid)
	challengeID, _ := uuid.Parse(r.ChallengeUuid)
	return &Progress{
		UserUUID:        userID,
		ChallengeUUID:   challengeID,
		SolvedQuestions: r.SolvedQuestions,
		Score:           r.Score,
		LastUpdated:     r.LastUpdated,
	}
}
