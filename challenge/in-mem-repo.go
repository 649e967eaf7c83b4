package challenge

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemChallengeRepo is an in-memory ChallengeRepo used in tests.
type InMemChallengeRepo struct {
	mu   sync.RWMutex
	rows map[string]ChallengeRow
}

func NewInMemChallengeRepo() *InMemChallengeRepo {
	return &InMemChallengeRepo{rows: make(map[string]ChallengeRow)}
}

func (r *InMemChallengeRepo) Get(ctx context.Context, uuid uuid.UUID) (*ChallengeRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[uuid.String()]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (r *InMemChallengeRepo) List(ctx context.Context) ([]*ChallengeRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*ChallengeRow, 0, len(r.rows))
	for _, row := range r.rows {
		copied := row
		rows = append(rows, &copied)
	}
	return rows, nil
}

func (r *InMemChallengeRepo) Save(ctx context.Context, row *ChallengeRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row.Version++
	r.rows[row.Uuid] = *row
	return nil
}

func (r *InMemChallengeRepo) Delete(ctx context.Context, uuid uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, uuid.String())
	return nil
}
