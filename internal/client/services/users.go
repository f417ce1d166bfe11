package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, u models.NewUser) (models.User, error)
	Delete(ctx context.Context, id string) error
	// WeeklyStats returns utilization per user for the days between start
	// and end (YYYY-MM-DD, both optional).
	WeeklyStats(ctx context.Context, start, end string) ([]models.WeeklyUserStats, error)
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: "/users"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: "/users/" + url.PathEscape(id)}, &u)
	return u, err
}

func (s *userService) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	var created models.User
	err := s.client.Do(ctx, client.Request{Method: http.MethodPost, Path: "/users", Body: u}, &created)
	return created, err
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, client.Request{Method: http.MethodDelete, Path: "/users/" + url.PathEscape(id)}, nil)
}

func (s *userService) WeeklyStats(ctx context.Context, start, end string) ([]models.WeeklyUserStats, error) {
	var stats []models.WeeklyUserStats
	err := s.client.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/users/stats/weekly",
		Query:  dateRange(start, end),
	}, &stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func dateRange(start, end string) url.Values {
	q := url.Values{}
	if start != "" {
		q.Set("startDate", start)
	}
	if end != "" {
		q.Set("endDate", end)
	}
	return q
}
