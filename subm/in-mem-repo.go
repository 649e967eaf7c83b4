package subm

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemSubmRepo is an in-memory SubmRepo used in tests.
type InMemSubmRepo struct {
	mu   sync.RWMutex
	rows map[string]SubmissionRow
}

func NewInMemSubmRepo() *InMemSubmRepo {
	return &InMemSubmRepo{rows: make(map[string]SubmissionRow)}
}

func (r *InMemSubmRepo) Save(ctx context.Context, row *SubmissionRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[row.Uuid] = *row
	return nil
}

func (r *InMemSubmRepo) Get(ctx context.Context, uuid uuid.UUID) (*SubmissionRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[uuid.String()]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (r *InMemSubmRepo) HasPassed(ctx context.Context, userUUID, challengeUUID, questionUUID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.UserUuid == userUUID.String() &&
			row.ChallengeUuid == challengeUUID.String() &&
			row.QuestionUuid == questionUUID.String() &&
			row.Status == StatusPass {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemSubmRepo) ListByUser(ctx context.Context, userUUID uuid.UUID) ([]*SubmissionRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*SubmissionRow, 0)
	for _, row := range r.rows {
		if row.UserUuid == userUUID.String() {
			copied := row
			rows = append(rows, &copied)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].UnixTime > rows[j].UnixTime
	})
	return rows, nil
}

func (r *InMemSubmRepo) Delete(ctx context.Context, uuid uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, uuid.String())
	return nil
}

// InMemProgressRepo is an in-memory ProgressRepo used in tests. It mirrors
// the DynamoDB semantics: set union plus increment under one lock, no-op
// when the question is already solved.
type InMemProgressRepo struct {
	mu   sync.Mutex
	rows map[string]ProgressRow // keyed by user uuid + "/" + challenge uuid
}

func NewInMemProgressRepo() *InMemProgressRepo {
	return &InMemProgressRepo{rows: make(map[string]ProgressRow)}
}

func progressKey(userUUID, challengeUUID uuid.UUID) string {
	return userUUID.String() + "/" + challengeUUID.String()
}

func (r *InMemProgressRepo) ApplyFirstPass(ctx context.Context, userUUID, challengeUUID uuid.UUID, questionUUID uuid.UUID, points int, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := progressKey(userUUID, challengeUUID)
	row, ok := r.rows[key]
	if !ok {
		row = ProgressRow{
			UserUuid:      userUUID.String(),
			ChallengeUuid: challengeUUID.String(),
		}
	}

	for _, solved := range row.SolvedQuestions {
		if solved == questionUUID.String() {
			return nil
		}
	}

	row.SolvedQuestions = append(row.SolvedQuestions, questionUUID.String())
	row.Score += points
	row.LastUpdated = now
	r.rows[key] = row
	return nil
}

func (r *InMemProgressRepo) Get(ctx context.Context, userUUID, challengeUUID uuid.UUID) (*ProgressRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[progressKey(userUUID, challengeUUID)]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}
