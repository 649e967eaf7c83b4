package question

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type QuestionSrvc struct {
	questions QuestionRepo
	testCases TestCaseRepo
}

func NewQuestionSrvc(questions QuestionRepo, testCases TestCaseRepo) *QuestionSrvc {
	return &QuestionSrvc{
		questions: questions,
		testCases: testCases,
	}
}

type CreateQuestionParams struct {
	ChallengeUUID uuid.UUID
	Title         string
	Statement     string
	MaxScore      int
}

func (s *QuestionSrvc) CreateQuestion(ctx context.Context, p CreateQuestionParams) (*Question, error) {
	if p.Title == "" {
		return nil, newErrTitleEmpty()
	}
	if p.MaxScore <= 0 {
		return nil, newErrMaxScoreNotPositive()
	}

	row := &QuestionRow{
		Uuid:          uuid.New().String(),
		ChallengeUuid: p.ChallengeUUID.String(),
		Title:         p.Title,
		Statement:     p.Statement,
		MaxScore:      p.MaxScore,
		Version:       0,
		CreatedAt:     time.Now(),
	}

	if err := s.questions.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving question: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return row.toQuestion(), nil
}

func (s *QuestionSrvc) GetQuestion(ctx context.Context, questionUUID uuid.UUID) (*Question, error) {
	row, err := s.questions.Get(ctx, questionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting question: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrQuestionNotFound()
	}

	return row.toQuestion(), nil
}

func (s *QuestionSrvc) ListQuestionsByChallenge(ctx context.Context, challengeUUID uuid.UUID) ([]Question, error) {
	rows, err := s.questions.ListByChallenge(ctx, challengeUUID)
	if err != nil {
		errMsg := fmt.Errorf("error listing questions: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	questions := make([]Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, *row.toQuestion())
	}
	return questions, nil
}

type UpdateQuestionParams struct {
	Title     *string
	Statement *string
	MaxScore  *int
}

func (s *QuestionSrvc) UpdateQuestion(ctx context.Context, questionUUID uuid.UUID, p UpdateQuestionParams) (*Question, error) {
	row, err := s.questions.Get(ctx, questionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting question: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrQuestionNotFound()
	}

	if p.Title != nil {
		if *p.Title == "" {
			return nil, newErrTitleEmpty()
		}
		row.Title = *p.Title
	}
	if p.Statement != nil {
		row.Statement = *p.Statement
	}
	if p.MaxScore != nil {
		if *p.MaxScore <= 0 {
			return nil, newErrMaxScoreNotPositive()
		}
		row.MaxScore = *p.MaxScore
	}

	if err := s.questions.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving question: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return row.toQuestion(), nil
}

func (s *QuestionSrvc) DeleteQuestion(ctx context.Context, questionUUID uuid.UUID) error {
	row, err := s.questions.Get(ctx, questionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting question: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return newErrQuestionNotFound()
	}

	tests, err := s.testCases.List(ctx, questionUUID)
	if err != nil {
		errMsg := fmt.Errorf("error listing test cases: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	for _, tc := range tests {
		if err := s.testCases.Delete(ctx, questionUUID, tc.SeqNo); err != nil {
			errMsg := fmt.Errorf("error deleting test case: %w", err)
			return newErrInternalSE().SetDebug(errMsg)
		}
	}

	if err := s.questions.Delete(ctx, questionUUID); err != nil {
		errMsg := fmt.Errorf("error deleting question: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	return nil
}
