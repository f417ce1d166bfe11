package models

// DashboardMetrics feeds the admin summary tiles (GET /metrics/dashboard).
type DashboardMetrics struct {
	TotalUsers        int     `json:"totalUsers"`
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	PendingTimesheets int     `json:"pendingTimesheets"`
	TotalHoursLogged  float64 `json:"totalHoursLogged"`
}
