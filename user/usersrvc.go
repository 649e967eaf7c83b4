package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserSrvc struct {
	repo UserRepo
}

func NewUserSrvc(repo UserRepo) *UserSrvc {
	return &UserSrvc{repo: repo}
}

func (s *UserSrvc) GetUserByUUID(ctx context.Context, uuid uuid.UUID) (*User, error) {
	row, err := s.repo.Get(ctx, uuid)
	if err != nil {
		errMsg := fmt.Errorf("error getting user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}

	return row.toUser(), nil
}

func (s *UserSrvc) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	allUsers, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, row := range allUsers {
		if row.Username == username {
			return row.toUser(), nil
		}
	}

	errMsg := fmt.Errorf("user with username %s not found", username)
	return nil, newErrUserNotFound().SetDebug(errMsg)
}

// Login verifies the credential pair and returns the matching user.
func (s *UserSrvc) Login(ctx context.Context, username, password string) (*User, error) {
	allUsers, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, row := range allUsers {
		if row.Username == username {
			err = bcrypt.CompareHashAndPassword(row.BcryptPwd, []byte(password))
			if err == nil {
				return row.toUser(), nil
			}
		}
	}

	return nil, newErrUsernameOrPasswordIncorrect()
}
