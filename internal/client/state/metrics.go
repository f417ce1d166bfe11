package state

import (
	"context"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/services"
)

type MetricsStore struct {
	svc       services.MetricsService
	dashboard Container[models.DashboardMetrics]
}

func NewMetricsStore(svc services.MetricsService) *MetricsStore {
	return &MetricsStore{svc: svc}
}

func (s *MetricsStore) Fetch(ctx context.Context) error {
	return s.dashboard.Load(ctx, s.svc.Dashboard)
}

func (s *MetricsStore) Dashboard() Snapshot[models.DashboardMetrics] { return s.dashboard.Snapshot() }

func (s *MetricsStore) ClearErrors() { s.dashboard.ClearError() }

func (s *MetricsStore) Reset() { s.dashboard.Reset() }
