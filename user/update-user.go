package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UpdateUserParams struct {
	Username *string
	Email    *string
	Password *string
}

// UpdateUser applies the provided profile changes. Nil fields are left as-is.
func (s *UserSrvc) UpdateUser(ctx context.Context, userUUID uuid.UUID, p UpdateUserParams) (*User, error) {
	row, err := s.repo.Get(ctx, userUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}

	if p.Username != nil && *p.Username != row.Username {
		if err := validateUsername(*p.Username); err != nil {
			return nil, err
		}
		taken, err := s.usernameTaken(ctx, *p.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, newErrUsernameExists()
		}
		row.Username = *p.Username
	}

	if p.Email != nil && *p.Email != row.Email {
		if err := validateEmail(*p.Email); err != nil {
			return nil, err
		}
		taken, err := s.emailTaken(ctx, *p.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, newErrEmailExists()
		}
		row.Email = *p.Email
	}

	if p.Password != nil {
		if err := validatePassword(*p.Password); err != nil {
			return nil, err
		}
		bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			errMsg := fmt.Errorf("error hashing password: %w", err)
			return nil, newErrInternalSE().SetDebug(errMsg)
		}
		row.BcryptPwd = bcryptPwd
	}

	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return row.toUser(), nil
}

func (s *UserSrvc) DeleteUser(ctx context.Context, userUUID uuid.UUID) error {
	row, err := s.repo.Get(ctx, userUUID)
	if err != nil {
		errMsg := fmt.Errorf("error getting user: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return newErrUserNotFound()
	}

	if err := s.repo.Delete(ctx, userUUID); err != nil {
		errMsg := fmt.Errorf("error deleting user: %w", err)
		return newErrInternalSE().SetDebug(errMsg)
	}
	return nil
}

func (s *UserSrvc) usernameTaken(ctx context.Context, username string) (bool, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return false, newErrInternalSE().SetDebug(errMsg)
	}
	for _, row := range all {
		if row.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *UserSrvc) emailTaken(ctx context.Context, email string) (bool, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return false, newErrInternalSE().SetDebug(errMsg)
	}
	for _, row := range all {
		if row.Email == email {
			return true, nil
		}
	}
	return false, nil
}
