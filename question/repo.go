package question

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// QuestionRow is the persisted question document.
type QuestionRow struct {
	Uuid          string    `dynamo:"uuid,hash"` // Primary key
	ChallengeUuid string    `dynamo:"challenge_uuid" index:"challenge_uuid-index,hash"`
	Title         string    `dynamo:"title"`
	Statement     string    `dynamo:"statement"`
	MaxScore      int       `dynamo:"max_score"`
	Version       int       `dynamo:"version"` // For optimistic locking
	CreatedAt     time.Time `dynamo:"created_at"`
}

// TestCaseRow is the persisted test case document, keyed by question and
// sequence number so that queries return test cases in creation order.
type TestCaseRow struct {
	QuestionUuid string `dynamo:"question_uuid,hash"` // Primary key
	SeqNo        int    `dynamo:"seq_no,range"`
	Input        string `dynamo:"input"`
	Expected     string `dynamo:"expected"`
}

// QuestionRepo abstracts the question table. Get returns (nil, nil) when the
// question does not exist.
type QuestionRepo interface {
	Get(ctx context.Context, uuid uuid.UUID) (*QuestionRow, error)
	ListByChallenge(ctx context.Context, challengeUUID uuid.UUID) ([]*QuestionRow, error)
	Save(ctx context.Context, row *QuestionRow) error
	Delete(ctx context.Context, uuid uuid.UUID) error
}

// TestCaseRepo abstracts the test case table. List returns rows ordered by
// ascending sequence number.
type TestCaseRepo interface {
	List(ctx context.Context, questionUUID uuid.UUID) ([]*TestCaseRow, error)
	Put(ctx context.Context, row *TestCaseRow) error
	Delete(ctx context.Context, questionUUID uuid.UUID, seqNo int) error
}

func (r *QuestionRow) toQuestion() *Question {
	id, _ := uuid.Parse(r.Uuid)
	challengeID, _ := uuid.Parse(r.ChallengeUuid)
	return &Question{
		UUID:          id,
		ChallengeUUID: challengeID,
		Title:         r.Title,
		Statement:     r.Statement,
		MaxScore:      r.MaxScore,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *TestCaseRow) toTestCase() TestCase {
	questionID, _ := uuid.Parse(r.QuestionUuid)
	return TestCase{
		QuestionUUID: questionID,
		SeqNo:        r.SeqNo,
		Input:        r.Input,
		Expected:     r.Expected,
	}
}
