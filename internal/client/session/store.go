package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/repositories/kv"
	"github.com/dmitrijs2005/timesheets/internal/common"
	"github.com/dmitrijs2005/timesheets/internal/dbx"
	"github.com/dmitrijs2005/timesheets/internal/logging"
)

// Store is the process-wide session holder. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time

	mu      sync.RWMutex
	current *models.Session
	token   string
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{db: db, log: log, now: time.Now}
}

func (s *Store) repo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// Get returns the current session: the in-memory one if set, otherwise the
// persisted record. A missing or malformed record yields false.
func (s *Store) Get(ctx context.Context) (models.Session, bool) {
	s.mu.RLock()
	if s.current != nil {
		sess := *s.current
		s.mu.RUnlock()
		return sess, true
	}
	s.mu.RUnlock()

	return s.readPersisted(ctx)
}

// Token returns the bearer token of the current session or "" when there is
// none.
func (s *Store) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token != "" {
		return token, nil
	}

	raw, err := s.repo(s.db).Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Set stores sess and token in memory and persists both keys in a single
// transaction.
func (s *Store) Set(ctx context.Context, sess models.Session, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is required", models.ErrValidation)
	}
	if !sess.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", models.ErrValidation, sess.Role)
	}

	user, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, user)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &sess
	s.token = token
	s.mu.Unlock()

	s.log.Info(ctx, "session started", "username", sess.Username, "role", sess.Role)
	return nil
}

// Clear drops the session from memory and from durable storage. Memory is
// cleared even when the storage update fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.log.Info(ctx, "session cleared")
	return nil
}

// Hydrate loads the persisted session into memory. It reports whether a
// complete session (user record and token) was found.
func (s *Store) Hydrate(ctx context.Context) (bool, error) {
	sess, ok := s.readPersisted(ctx)
	if !ok {
		return false, nil
	}

	raw, err := s.repo(s.db).Get(ctx, common.TokenStorageKey)
	if err != nil {
		return false, fmt.Errorf("hydrate session: %w", err)
	}
	token := string(raw)
	if token == "" {
		return false, nil
	}

	if claims, err := ParseClaims(token); err == nil && claims.Expired(s.now()) {
		s.log.Warn(ctx, "persisted token has expired", "username", sess.Username, "expired_at", claims.ExpiresAt)
	}

	s.mu.Lock()
	s.current = &sess
	s.token = token
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "username", sess.Username, "role", sess.Role)
	return true, nil
}

func (s *Store) readPersisted(ctx context.Context) (models.Session, bool) {
	raw, err := s.repo(s.db).Get(ctx, common.UserStorageKey)
	if err != nil {
		s.log.Warn(ctx, "read persisted session", "error", err)
		return models.Session{}, false
	}
	if raw == nil {
		return models.Session{}, false
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn(ctx, "persisted session is not valid JSON", "error", err)
		return models.Session{}, false
	}
	if sess.Username == "" || !sess.Role.Valid() {
		s.log.Warn(ctx, "persisted session is incomplete")
		return models.Session{}, false
	}
	return sess, true
}
