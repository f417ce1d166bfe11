package cli

import (
	"context"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/session"
)

const (
	routeLogin        = "login"
	routeAdmin        = "admin"
	routeUser         = "user"
	routeUsers        = "users"
	routeProjects     = "projects"
	routeAssigned     = "assigned"
	routeTimesheets   = "timesheets"
	routeMyTimesheets = "mytimesheets"
	routeMetrics      = "metrics"
	routeProfile      = "profile"
)

// route is one guarded view. An empty roles list admits any signed-in user.
type route struct {
	roles []models.Role
	view  func(a *App, ctx context.Context, args []string) error
}

var (
	adminOnly = []models.Role{models.RoleAdmin}
	userOnly  = []models.Role{models.RoleUser}
	anyRole   = []models.Role{models.RoleUser, models.RoleAdmin}
)

// routes is built on each call: a package-level map would form an
// initialization cycle with views that call Navigate.
func routes() map[string]route {
	return map[string]route{
		routeAdmin:        {roles: adminOnly, view: (*App).adminDashboard},
		routeUser:         {roles: userOnly, view: (*App).userDashboard},
		routeUsers:        {roles: adminOnly, view: (*App).usersView},
		routeProjects:     {roles: adminOnly, view: (*App).projectsView},
		routeAssigned:     {roles: userOnly, view: (*App).assignedView},
		routeTimesheets:   {roles: adminOnly, view: (*App).timesheetsView},
		routeMyTimesheets: {roles: userOnly, view: (*App).myTimesheetsView},
		routeMetrics:      {roles: adminOnly, view: (*App).metricsView},
		routeProfile:      {roles: anyRole, view: (*App).profileView},
	}
}

func (a *App) hasRoute(name string) bool {
	_, ok := routes()[name]
	return ok
}

// Navigate switches to the named route if the gate allows it and renders
// the view. Without a session the REPL is sent to login and the requested
// route is forgotten.
func (a *App) Navigate(ctx context.Context, name string, args []string) error {
	if name == routeLogin {
		a.route = routeLogin
		return nil
	}

	r, ok := routes()[name]
	if !ok {
		a.println("Unknown command:", name)
		return nil
	}

	switch a.gate.Check(ctx, r.roles...) {
	case session.DecisionRedirectLogin:
		a.route = routeLogin
		a.println(loginRequiredMessage)
		return nil
	case session.DecisionUnauthorized:
		a.println(notAuthorizedMessage)
		return nil
	}

	if a.route != name {
		a.clearErrors()
	}
	a.route = name
	return r.view(a, ctx, args)
}
