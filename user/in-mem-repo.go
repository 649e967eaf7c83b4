package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemUserRepo is an in-memory UserRepo used in tests.
type InMemUserRepo struct {
	mu    sync.RWMutex
	users map[string]UserRow
}

func NewInMemUserRepo() *InMemUserRepo {
	return &InMemUserRepo{users: make(map[string]UserRow)}
}

func (r *InMemUserRepo) Get(ctx context.Context, uuid uuid.UUID) (*UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.users[uuid.String()]
	if !ok {
		return nil, nil
	}
	copied := row
	return &copied, nil
}

func (r *InMemUserRepo) List(ctx context.Context) ([]*UserRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := make([]*UserRow, 0, len(r.users))
	for _, row := range r.users {
		copied := row
		rows = append(rows, &copied)
	}
	return rows, nil
}

func (r *InMemUserRepo) Save(ctx context.Context, user *UserRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Version++
	r.users[user.Uuid] = *user
	return nil
}

func (r *InMemUserRepo) Delete(ctx context.Context, uuid uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, uuid.String())
	return nil
}
