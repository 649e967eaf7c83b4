package question

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	UUID          uuid.UUID
	ChallengeUUID uuid.UUID
	Title         string
	Statement     string
	MaxScore      int
	CreatedAt     time.Time
}

// TestCase is one input/expected-output pair bound to a question. SeqNo
// fixes the execution order; retrieval order equals creation order and is
// stable across repeated evaluations.
type TestCase struct {
	QuestionUUID uuid.UUID
	SeqNo        int
	Input        string
	Expected     string
}
