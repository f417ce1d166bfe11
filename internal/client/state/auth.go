package state

import (
	"context"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/services"
)

// AuthStore tracks the login request and the signed-in identity.
type AuthStore struct {
	svc  services.AuthService
	user Container[*models.Session]
}

func NewAuthStore(svc services.AuthService) *AuthStore {
	return &AuthStore{svc: svc}
}

// Restore seeds the store with a session loaded at startup.
func (s *AuthStore) Restore(sess models.Session) {
	s.user.Set(&sess)
}

func (s *AuthStore) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var sess models.Session
	err := s.user.Load(ctx, func(ctx context.Context) (*models.Session, error) {
		var err error
		sess, err = s.svc.Login(ctx, creds)
		if err != nil {
			return nil, err
		}
		return &sess, nil
	})
	return sess, err
}

// Logout clears the session. The store is reset even when durable storage
// could not be updated.
func (s *AuthStore) Logout(ctx context.Context) error {
	err := s.svc.Logout(ctx)
	s.user.Reset()
	return err
}

func (s *AuthStore) State() Snapshot[*models.Session] {
	return s.user.Snapshot()
}
