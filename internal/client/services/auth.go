package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/session"
)

// SessionWriter is the write side of the session store.
type SessionWriter interface {
	Set(ctx context.Context, sess models.Session, token string) error
	Clear(ctx context.Context) error
}

// AuthService exchanges credentials for a session.
//
// Contract:
//   - Login: POST /auth/login without a bearer token, persist token and
//     session on success.
//   - Logout: drop the session from memory and durable storage.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	sessions SessionWriter
}

func NewAuthService(c client.Client, sessions SessionWriter) AuthService {
	return &authService{client: c, sessions: sessions}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := creds.Validate(); err != nil {
		return models.Session{}, err
	}

	var resp models.LoginResponse
	err := a.client.Do(ctx, client.Request{
		Method:    http.MethodPost,
		Path:      "/auth/login",
		Body:      creds,
		Anonymous: true,
	}, &resp)
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}
	if resp.Token == "" {
		return models.Session{}, fmt.Errorf("%w: login response has no token", client.ErrBadResponse)
	}

	sess := models.Session{Username: resp.Username, Role: resp.Role}
	if !sess.Role.Valid() || sess.Username == "" {
		// older servers only put the role into the token
		if claims, err := session.ParseClaims(resp.Token); err == nil {
			if !sess.Role.Valid() {
				sess.Role = claims.Role
			}
			if sess.Username == "" {
				sess.Username = claims.Subject
			}
		}
	}
	if sess.Username == "" {
		sess.Username = creds.Username
	}
	if !sess.Role.Valid() {
		return models.Session{}, fmt.Errorf("%w: login response has no valid role", client.ErrBadResponse)
	}

	if err := a.sessions.Set(ctx, sess, resp.Token); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}
