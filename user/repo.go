package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRow is the persisted user document.
type UserRow struct {
	Uuid      string    `dynamo:"uuid,hash"` // Primary key
	Username  string    `dynamo:"username"`
	Email     string    `dynamo:"email"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	Role      string    `dynamo:"role"`
	Version   int       `dynamo:"version"` // For optimistic locking
	CreatedAt time.Time `dynamo:"created_at"`
}

// UserRepo abstracts the user table. Get returns (nil, nil) when the user
// does not exist.
type UserRepo interface {
	Get(ctx context.Context, uuid uuid.UUID) (*UserRow, error)
	List(ctx context.Context) ([]*UserRow, error)
	Save(ctx context.Context, user *UserRow) error
	Delete(ctx context.Context, uuid uuid.UUID) error
}

func (r *UserRow) toUser() *User {
	id, _ := uuid.Parse(r.Uuid)
	return &User{
		UUID:      id,
		Username:  r.Username,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}
