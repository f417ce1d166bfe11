package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

type MetricsService interface {
	Dashboard(ctx context.Context) (models.DashboardMetrics, error)
}

type metricsService struct {
	client client.Client
}

func NewMetricsService(c client.Client) MetricsService {
	return &metricsService{client: c}
}

func (s *metricsService) Dashboard(ctx context.Context) (models.DashboardMetrics, error) {
	var m models.DashboardMetrics
	err := s.client.Do(ctx, client.Request{Method: http.MethodGet, Path: "/metrics/dashboard"}, &m)
	return m, err
}
