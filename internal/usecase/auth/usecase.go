package auth

import (
	"context"
	"errors"

	"loantrack/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

type Usecase struct{ users user.Repository }

func NewUsecase(r user.Repository) *Usecase { return &Usecase{users: r} }

// SessionData is what a successful login binds to the caller's session.
type SessionData struct {
	Username string
	Role     user.Role
}

// Login verifies credentials against the stored bcrypt hash. Unknown usernames
// and wrong passwords both map to ErrInvalidCredentials.
func (u *Usecase) Login(ctx context.Context, username, password string) (*SessionData, error) {
	rec, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, user.ErrInvalidCredentials
	}
	return &SessionData{Username: rec.Username, Role: rec.Role}, nil
}

// HashPassword is used at seed time; login only ever compares.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
