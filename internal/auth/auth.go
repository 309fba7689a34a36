// Package auth wraps credential verification behind a narrow capability so
// handlers can be tested against a fake instead of a real backend.
package auth

import (
	"errors"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown users and wrong passwords
// alike; the login page shows one message for both.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Session is the result of a successful sign-in, consumed by the cookie
// session layer.
type Session struct {
	UserID   int
	Username string
}

// Authenticator is the sign-in capability the login handler depends on.
type Authenticator interface {
	SignIn(username, password string) (*Session, error)
}

// UserStore is the slice of the store the authenticator needs.
type UserStore interface {
	GetUserByUsername(username string) (*models.User, error)
}

// StoreAuthenticator verifies credentials against bcrypt hashes in the users
// table.
type StoreAuthenticator struct {
	Users UserStore
}

func (a *StoreAuthenticator) SignIn(username, password string) (*Session, error) {
	user, err := a.Users.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &Session{UserID: user.ID, Username: user.Username}, nil
}
