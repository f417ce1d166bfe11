package state

import (
	"context"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/services"
)

type TimesheetStore struct {
	svc        services.TimesheetService
	timesheets Collection[models.Timesheet]
	current    Container[models.Timesheet]
	summary    Container[models.TimesheetSummary]
}

func NewTimesheetStore(svc services.TimesheetService) *TimesheetStore {
	return &TimesheetStore{svc: svc}
}

func (s *TimesheetStore) FetchMine(ctx context.Context) error {
	return s.timesheets.Fetch(ctx, s.svc.ListMine)
}

func (s *TimesheetStore) FetchByUser(ctx context.Context, userID string) error {
	return s.timesheets.Fetch(ctx, func(ctx context.Context) ([]models.Timesheet, error) {
		return s.svc.ListByUser(ctx, userID)
	})
}

func (s *TimesheetStore) FetchByProject(ctx context.Context, projectID, start, end string) error {
	return s.timesheets.Fetch(ctx, func(ctx context.Context) ([]models.Timesheet, error) {
		return s.svc.ListByProject(ctx, projectID, start, end)
	})
}

func (s *TimesheetStore) FetchOne(ctx context.Context, id string) error {
	return s.current.Load(ctx, func(ctx context.Context) (models.Timesheet, error) {
		return s.svc.Get(ctx, id)
	})
}

func (s *TimesheetStore) Submit(ctx context.Context, t models.NewTimesheet) (models.Timesheet, error) {
	return s.timesheets.Create(ctx, func(ctx context.Context) (models.Timesheet, error) {
		return s.svc.Submit(ctx, t)
	})
}

func (s *TimesheetStore) Approve(ctx context.Context, id string) (models.Timesheet, error) {
	return s.review(ctx, func(ctx context.Context) (models.Timesheet, error) {
		return s.svc.Approve(ctx, id)
	})
}

func (s *TimesheetStore) Reject(ctx context.Context, id, reason string) (models.Timesheet, error) {
	return s.review(ctx, func(ctx context.Context) (models.Timesheet, error) {
		return s.svc.Reject(ctx, id, reason)
	})
}

func (s *TimesheetStore) review(ctx context.Context, op func(ctx context.Context) (models.Timesheet, error)) (models.Timesheet, error) {
	t, err := s.timesheets.Update(ctx, op)
	if err == nil {
		if cur := s.current.Snapshot(); cur.Data.ID == t.ID {
			s.current.Set(t)
		}
	}
	return t, err
}

func (s *TimesheetStore) FetchSummary(ctx context.Context) error {
	return s.summary.Load(ctx, s.svc.Summary)
}

func (s *TimesheetStore) Timesheets() Snapshot[[]models.Timesheet] { return s.timesheets.Snapshot() }

func (s *TimesheetStore) Current() Snapshot[models.Timesheet] { return s.current.Snapshot() }

func (s *TimesheetStore) Summary() Snapshot[models.TimesheetSummary] { return s.summary.Snapshot() }

// Find looks id up in the last fetched list.
func (s *TimesheetStore) Find(id string) (models.Timesheet, bool) {
	return s.timesheets.Find(id)
}

func (s *TimesheetStore) ClearErrors() {
	s.timesheets.ClearError()
	s.current.ClearError()
	s.summary.ClearError()
}

func (s *TimesheetStore) Reset() {
	s.timesheets.Clear()
	s.current.Reset()
	s.summary.Reset()
}
