package state

import (
	"context"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/services"
)

type ProjectStore struct {
	svc      services.ProjectService
	projects Collection[models.Project]
	current  Container[models.Project]
}

func NewProjectStore(svc services.ProjectService) *ProjectStore {
	return &ProjectStore{svc: svc}
}

func (s *ProjectStore) FetchAll(ctx context.Context) error {
	return s.projects.Fetch(ctx, s.svc.List)
}

func (s *ProjectStore) FetchOne(ctx context.Context, id string) error {
	return s.current.Load(ctx, func(ctx context.Context) (models.Project, error) {
		return s.svc.Get(ctx, id)
	})
}

func (s *ProjectStore) Create(ctx context.Context, p models.NewProject) (models.Project, error) {
	return s.projects.Create(ctx, func(ctx context.Context) (models.Project, error) {
		return s.svc.Create(ctx, p)
	})
}

func (s *ProjectStore) Update(ctx context.Context, id string, p models.NewProject) (models.Project, error) {
	updated, err := s.projects.Update(ctx, func(ctx context.Context) (models.Project, error) {
		return s.svc.Update(ctx, id, p)
	})
	if err == nil {
		s.syncCurrent(updated)
	}
	return updated, err
}

func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	return s.projects.Remove(ctx, id, func(ctx context.Context) error {
		return s.svc.Delete(ctx, id)
	})
}

func (s *ProjectStore) AssignUsers(ctx context.Context, id string, userIDs []string) (models.Project, error) {
	updated, err := s.projects.Update(ctx, func(ctx context.Context) (models.Project, error) {
		return s.svc.AssignUsers(ctx, id, userIDs)
	})
	if err == nil {
		s.syncCurrent(updated)
	}
	return updated, err
}

func (s *ProjectStore) syncCurrent(p models.Project) {
	if cur := s.current.Snapshot(); cur.Data.ID == p.ID {
		s.current.Set(p)
	}
}

func (s *ProjectStore) Projects() Snapshot[[]models.Project] { return s.projects.Snapshot() }

func (s *ProjectStore) Current() Snapshot[models.Project] { return s.current.Snapshot() }

func (s *ProjectStore) ClearErrors() {
	s.projects.ClearError()
	s.current.ClearError()
}

func (s *ProjectStore) Reset() {
	s.projects.Clear()
	s.current.Reset()
}
