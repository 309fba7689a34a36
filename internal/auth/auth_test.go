package auth

import (
	"errors"
	"testing"

	"github.com/Arbaznazir/shehjar-sub001/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]*models.User
	err   error
}

func (f *fakeUserStore) GetUserByUsername(username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[username], nil
}

func TestSignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	store := &fakeUserStore{users: map[string]*models.User{
		"arbaz": {ID: 7, Username: "arbaz", Password: string(hash)},
	}}
	a := &StoreAuthenticator{Users: store}

	t.Run("valid credentials", func(t *testing.T) {
		sess, err := a.SignIn("arbaz", "s3cret")
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if sess.UserID != 7 || sess.Username != "arbaz" {
			t.Errorf("session = %+v", sess)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.SignIn("arbaz", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := a.SignIn("ghost", "s3cret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		broken := &StoreAuthenticator{Users: &fakeUserStore{err: errors.New("db gone")}}
		_, err := broken.SignIn("arbaz", "s3cret")
		if err == nil || errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("store errors should not look like bad credentials, got %v", err)
		}
	})
}
