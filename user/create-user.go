package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/codeclash/backend/auth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Role     string // "user" when empty
}

func validateUsername(username string) error {
	const minUsernameLength = 2
	const maxUsernameLength = 32
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) == 0 {
		return newErrEmailEmpty()
	}
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return newErrEmailInvalid()
	}
	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 6
	const maxPasswordLength = 1024
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return newErrPasswordTooLong()
	}
	return nil
}

func validateRole(role string) error {
	if role != auth.RoleUser && role != auth.RoleAdmin {
		return newErrInvalidRole()
	}
	return nil
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	if p.Role == "" {
		p.Role = auth.RoleUser
	}

	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}
	if err := validateRole(p.Role); err != nil {
		return nil, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	for _, row := range all {
		// username and email must be unique
		if row.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		if row.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		errMsg := fmt.Errorf("error hashing password: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	row := &UserRow{
		Uuid:      uuid.New().String(),
		Username:  p.Username,
		Email:     p.Email,
		BcryptPwd: bcryptPwd,
		Role:      p.Role,
		Version:   0,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	return row.toUser(), nil
}
