package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	api, rec := newFakeAPI(t, "stale", func(r chi.Router, _ *recorded) {
		r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, models.LoginResponse{Token: "tok", Username: "alice", Role: models.RoleAdmin})
		})
	})
	sessions := &fakeSessions{}

	sess, err := NewAuthService(api, sessions).Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.Session{Username: "alice", Role: models.RoleAdmin}, sess)
	assert.Equal(t, sess, sessions.sess)
	assert.Equal(t, "tok", sessions.token)
	assert.Empty(t, rec.auth, "login is sent without a bearer token")
	assert.Equal(t, map[string]any{"username": "alice", "password": "pw"}, rec.body)
}

func TestAuthService_Login_RoleFromToken(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bob", "role": "USER"}).SignedString([]byte("k"))
	require.NoError(t, err)

	api, _ := newFakeAPI(t, "", func(r chi.Router, _ *recorded) {
		r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"token": token})
		})
	})
	sessions := &fakeSessions{}

	sess, err := NewAuthService(api, sessions).Login(context.Background(), models.Credentials{Username: "b", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.Session{Username: "bob", Role: models.RoleUser}, sess)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		wantIs error
	}{
		{"bad credentials", http.StatusUnauthorized, map[string]string{"message": "Bad credentials"}, client.ErrUnauthorized},
		{"no token", http.StatusOK, map[string]string{"username": "a", "role": "USER"}, client.ErrBadResponse},
		{"no role anywhere", http.StatusOK, map[string]string{"token": "opaque"}, client.ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, _ := newFakeAPI(t, "", func(r chi.Router, _ *recorded) {
				r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
					writeJSON(w, tt.status, tt.body)
				})
			})
			sessions := &fakeSessions{}

			_, err := NewAuthService(api, sessions).Login(context.Background(), models.Credentials{Username: "a", Password: "pw"})

			assert.ErrorIs(t, err, tt.wantIs)
			assert.Empty(t, sessions.token)
		})
	}
}

func TestAuthService_Login_ValidatesLocally(t *testing.T) {
	api, rec := newFakeAPI(t, "", func(chi.Router, *recorded) {})

	_, err := NewAuthService(api, &fakeSessions{}).Login(context.Background(), models.Credentials{Username: "a"})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Empty(t, rec.method, "no request is made")
}

func TestAuthService_Login_PersistFailure(t *testing.T) {
	api, _ := newFakeAPI(t, "", func(r chi.Router, _ *recorded) {
		r.Post("/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, models.LoginResponse{Token: "t", Username: "a", Role: models.RoleUser})
		})
	})

	_, err := NewAuthService(api, &fakeSessions{setErr: errors.New("disk full")}).Login(context.Background(), models.Credentials{Username: "a", Password: "p"})
	assert.ErrorContains(t, err, "disk full")
}

func TestAuthService_Logout(t *testing.T) {
	sessions := &fakeSessions{token: "t"}
	require.NoError(t, NewAuthService(nil, sessions).Logout(context.Background()))
	assert.Equal(t, 1, sessions.cleared)
	assert.Empty(t, sessions.token)
}
