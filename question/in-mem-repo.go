package question

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemQuestionRepo is an in-memory QuestionRepo used in tests.
type InMemQuestionRepo struct {
	mu   sync.RWMutex
	rows map[string]QuestionRow
}

func NewInMemQuestionRepo() *InMemQuestionRepo {
	return &InMemQuestionRepo{rows: make(map[string]QuestionRow)}
}

func (r *InMemQuestionRepo) Get(ctx context.Context, uuid uuid.UUID) (*QuestionRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[uuid.String()]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (r *InMemQuestionRepo) ListByChallenge(ctx context.Context, challengeUUID uuid.UUID) ([]*QuestionRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*QuestionRow, 0)
	for _, row := range r.rows {
		if row.ChallengeUuid == challengeUUID.String() {
			copied := row
			rows = append(rows, &copied)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.Before(rows[j].CreatedAt)
	})
	return rows, nil
}

func (r *InMemQuestionRepo) Save(ctx context.Context, row *QuestionRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Version++
	r.rows[row.Uuid] = *row
	return nil
}

func (r *InMemQuestionRepo) Delete(ctx context.Context, uuid uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, uuid.String())
	return nil
}

// InMemTestCaseRepo is an in-memory TestCaseRepo used in tests. List keeps
// the sequence-number ordering the DynamoDB range key provides.
type InMemTestCaseRepo struct {
	mu   sync.RWMutex
	rows map[string][]TestCaseRow // keyed by question uuid
}

func NewInMemTestCaseRepo() *InMemTestCaseRepo {
	return &InMemTestCaseRepo{rows: make(map[string][]TestCaseRow)}
}

func (r *InMemTestCaseRepo) List(ctx context.Context, questionUUID uuid.UUID) ([]*TestCaseRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.rows[questionUUID.String()]
	rows := make([]*TestCaseRow, 0, len(stored))
	for _, row := range stored {
		copied := row
		rows = append(rows, &copied)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].SeqNo < rows[j].SeqNo
	})
	return rows, nil
}

func (r *InMemTestCaseRepo) Put(ctx context.Context, row *TestCaseRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := row.QuestionUuid
	for i, existing := range r.rows[key] {
		if existing.SeqNo == row.SeqNo {
			r.rows[key][i] = *row
			return nil
		}
	}
	r.rows[key] = append(r.rows[key], *row)
	return nil
}

func (r *InMemTestCaseRepo) Delete(ctx context.Context, questionUUID uuid.UUID, seqNo int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := questionUUID.String()
	stored := r.rows[key]
	for i, existing := range stored {
		if existing.SeqNo == seqNo {
			r.rows[key] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return nil
}
