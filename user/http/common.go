package http

import "github.com/codeclash/backend/user"

type User struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func mapUser(u *user.User) User {
	return User{
		UUID:     u.UUID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
