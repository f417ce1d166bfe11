package cli

import (
	"context"
	"strconv"
)

func (a *App) metricsView(ctx context.Context, args []string) error {
	err := a.dispatch(ctx, a.metrics.Fetch)
	a.renderTiles()

	start, end := arg(args, 0), arg(args, 1)
	if serr := a.fetchWeeklyStats(ctx, []string{start, end}); serr != nil && err == nil {
		err = serr
	}
	a.renderUtilization()
	return err
}

func (a *App) renderTiles() {
	s := a.metrics.Dashboard()
	if !banner(a, s) {
		return
	}
	m := s.Data
	a.table([]string{"USERS", "PROJECTS", "ACTIVE PROJECTS", "PENDING TIMESHEETS", "HOURS LOGGED"}, [][]string{{
		strconv.Itoa(m.TotalUsers),
		strconv.Itoa(m.TotalProjects),
		strconv.Itoa(m.ActiveProjects),
		strconv.Itoa(m.PendingTimesheets),
		hours(m.TotalHoursLogged),
	}})
}
