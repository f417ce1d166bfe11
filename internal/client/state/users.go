package state

import (
	"context"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/services"
)

type UserStore struct {
	svc      services.UserService
	users    Collection[models.User]
	selected Container[models.User]
	weekly   Container[[]models.WeeklyUserStats]
}

func NewUserStore(svc services.UserService) *UserStore {
	return &UserStore{svc: svc}
}

func (s *UserStore) FetchAll(ctx context.Context) error {
	return s.users.Fetch(ctx, s.svc.List)
}

func (s *UserStore) FetchOne(ctx context.Context, id string) error {
	return s.selected.Load(ctx, func(ctx context.Context) (models.User, error) {
		return s.svc.Get(ctx, id)
	})
}

func (s *UserStore) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	return s.users.Create(ctx, func(ctx context.Context) (models.User, error) {
		return s.svc.Create(ctx, u)
	})
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.users.Remove(ctx, id, func(ctx context.Context) error {
		return s.svc.Delete(ctx, id)
	})
}

func (s *UserStore) FetchWeeklyStats(ctx context.Context, start, end string) error {
	return s.weekly.Load(ctx, func(ctx context.Context) ([]models.WeeklyUserStats, error) {
		return s.svc.WeeklyStats(ctx, start, end)
	})
}

func (s *UserStore) Users() Snapshot[[]models.User] { return s.users.Snapshot() }

func (s *UserStore) Selected() Snapshot[models.User] { return s.selected.Snapshot() }

func (s *UserStore) WeeklyStats() Snapshot[[]models.WeeklyUserStats] { return s.weekly.Snapshot() }

// ClearErrors returns failed requests to Idle, keeping their data.
func (s *UserStore) ClearErrors() {
	s.users.ClearError()
	s.selected.ClearError()
	s.weekly.ClearError()
}

// Reset drops everything, used on logout.
func (s *UserStore) Reset() {
	s.users.Clear()
	s.selected.Reset()
	s.weekly.Reset()
}
