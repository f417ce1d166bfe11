package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

type TimesheetService interface {
	// ListMine returns the timesheets of the signed-in user (GET /timesheets).
	ListMine(ctx context.Context) ([]models.Timesheet, error)
	ListByUser(ctx context.Context, userID string) ([]models.Timesheet, error)
	ListByProject(ctx context.Context, projectID, start, end string) ([]models.Timesheet, error)
	Get(ctx context.Context, id string) (models.Timesheet, error)
	Submit(ctx context.Context, t models.NewTimesheet) (models.Timesheet, error)
	Approve(ctx context.Context, id string) (models.Timesheet, error)
	Reject(ctx context.Context, id, reason string) (models.Timesheet, error)
	Summary(ctx context.Context) (models.TimesheetSummary, error)
}

type timesheetService struct {
	client client.Client
}

func NewTimesheetService(c client.Client) TimesheetService {
	return &timesheetService{client: c}
}

func timesheetPath(id string) string {
	return "/timesheets/" + url.PathEscape(id)
}

func (s *timesheetService) list(ctx context.Context, path string, q url.Values) ([]models.Timesheet, error) {
	var ts []models.Timesheet
	if err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: path, Query: q}, &ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *timesheetService) ListMine(ctx context.Context) ([]models.Timesheet, error) {
	return s.list(ctx, "/timesheets", nil)
}

func (s *timesheetService) ListByUser(ctx context.Context, userID string) ([]models.Timesheet, error) {
	return s.list(ctx, "/timesheets/users/"+url.PathEscape(userID), nil)
}

func (s *timesheetService) ListByProject(ctx context.Context, projectID, start, end string) ([]models.Timesheet, error) {
	return s.list(ctx, "/timesheets/projects/"+url.PathEscape(projectID), dateRange(start, end))
}

func (s *timesheetService) Get(ctx context.Context, id string) (models.Timesheet, error) {
	var t models.Timesheet
	err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: timesheetPath(id)}, &t)
	return t, err
}

func (s *timesheetService) Submit(ctx context.Context, t models.NewTimesheet) (models.Timesheet, error) {
	if err := t.Validate(); err != nil {
		return models.Timesheet{}, err
	}
	if t.Status == "" {
		t.Status = models.TimesheetSubmitted
	}

	var created models.Timesheet
	err := s.client.Do(ctx, client.Request{Method: http.MethodPost, Path: "/timesheets", Body: t}, &created)
	return created, err
}

func (s *timesheetService) Approve(ctx context.Context, id string) (models.Timesheet, error) {
	var t models.Timesheet
	err := s.client.Do(ctx, client.Request{Method: http.MethodPatch, Path: timesheetPath(id) + "/approve"}, &t)
	return t, err
}

func (s *timesheetService) Reject(ctx context.Context, id, reason string) (models.Timesheet, error) {
	if strings.TrimSpace(reason) == "" {
		return models.Timesheet{}, fmt.Errorf("%w: rejection reason is required", models.ErrValidation)
	}

	var t models.Timesheet
	err := s.client.Do(ctx, client.Request{
		Method: http.MethodPatch,
		Path:   timesheetPath(id) + "/reject",
		Body:   models.RejectRequest{Reason: reason},
	}, &t)
	return t, err
}

func (s *timesheetService) Summary(ctx context.Context) (models.TimesheetSummary, error) {
	var sum models.TimesheetSummary
	err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: "/timesheets/stats/summary"}, &sum)
	return sum, err
}
