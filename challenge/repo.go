package challenge

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChallengeRow is the persisted challenge document.
type ChallengeRow struct {
	Uuid        string    `dynamo:"uuid,hash"` // Primary key
	Title       string    `dynamo:"title"`
	Description string    `dynamo:"description"`
	CreatedBy   string    `dynamo:"created_by"`
	Version     int       `dynamo:"version"` // For optimistic locking
	CreatedAt   time.Time `dynamo:"created_at"`
	UpdatedAt   time.Time `dynamo:"updated_at"`
}

// ChallengeRepo abstracts the challenge table. Get returns (nil, nil) when
// the challenge does not exist.
type ChallengeRepo interface {
	Get(ctx context.Context, uuid uuid.UUID) (*ChallengeRow, error)
	List(ctx context.Context) ([]*ChallengeRow, error)
	Save(ctx context.Context, row *ChallengeRow) error
	Delete(ctx context.Context, uuid uuid.UUID) error
}

func (r *ChallengeRow) toChallenge() *Challenge {
	id, _ := uuid.Parse(r.Uuid)
	createdBy, _ := uuid.Parse(r.CreatedBy)
	return &Challenge{
		UUID:        id,
		Title:       r.Title,
		Description: r.Description,
		CreatedBy:   createdBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
