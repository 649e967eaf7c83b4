package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type AddTestCaseParams struct {
	QuestionUUID uuid.UUID
	Input        string
	Expected     string
}

// AddTestCase appends a test case to the question's ordered list. The next
// free sequence number is assigned so that retrieval order equals creation
// order.
func (s *QuestionSrvc) AddTestCase(ctx context.Context, p AddTestCaseParams) (*TestCase, error) {
	row, err := s.questions.Get(ctx, p.QuestionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting question: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrQuestionNotFound()
	}

	existing, err := s.testCases.List(ctx, p.QuestionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error listing test cases: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	nextSeq := 1
	if len(existing) > 0 {
		nextSeq = existing[len(existing)-1].SeqNo + 1
	}

	tcRow := &TestCaseRow{
		QuestionUuid: p.QuestionUUID.String(),
		SeqNo:        nextSeq,
		Input:        p.Input,
		Expected:     p.Expected,
	}
	if err := s.testCases.Put(ctx, tcRow); err != nil {
		errMsg := fmt.Errorf("error saving test case: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	tc := tcRow.toTestCase()
	return &tc, nil
}

// ListTestCases returns the question's test cases in execution order.
func (s *QuestionSrvc) ListTestCases(ctx context.Context, questionUUID uuid.UUID) ([]TestCase, error) {
	rows, err := s.testCases.List(ctx, questionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error listing test cases: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	tests := make([]TestCase, 0, len(rows))
	for _, row := range rows {
		tests = append(tests, row.toTestCase())
	}
	return tests, nil
}

func (s *QuestionSrvc) DeleteTestCase(ctx context.Context, questionUUID uuid.UUID, seqNo int) error {
	rows, err := s.testCases.List(ctx, questionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error listing test cases: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}

	for _, row := range rows {
		if row.SeqNo == seqNo {
			if err := s.testCases.Delete(ctx, questionUUID, seqNo); err != nil {
				errMsg := fmt.Errorf("error deleting test case: %w", err)
				return newErrInternalSE().SetDebug(errMsg)
			}
			return nil
		}
	}
	return newErrTestCaseNotFound()
}
