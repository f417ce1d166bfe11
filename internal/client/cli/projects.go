package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/session"
)

var projectStatuses = []string{string(models.ProjectActive), string(models.ProjectOnHold), string(models.ProjectCompleted)}

func (a *App) projectsView(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")

	switch sub {
	case "list":
		err := a.dispatch(ctx, a.projects.FetchAll)
		a.renderProjects(nil)
		return err

	case "show":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("projects show <id>")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error { return a.projects.FetchOne(ctx, id) })
		if s := a.projects.Current(); banner(a, s) && err == nil {
			a.renderProject(s.Data)
		}
		return err

	case "create":
		form, err := a.projectForm(models.Project{Status: models.ProjectActive})
		if err != nil {
			return a.outcome(err, "")
		}
		var created models.Project
		err = a.dispatch(ctx, func(ctx context.Context) error {
			var err error
			created, err = a.projects.Create(ctx, form)
			return err
		})
		return a.outcome(err, fmt.Sprintf("Project %q created (id %s).", created.Name, created.ID))

	case "update":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("projects update <id>")
		}
		if err := a.dispatch(ctx, func(ctx context.Context) error { return a.projects.FetchOne(ctx, id) }); err != nil {
			banner(a, a.projects.Current())
			return err
		}
		form, err := a.projectForm(a.projects.Current().Data)
		if err != nil {
			return a.outcome(err, "")
		}
		err = a.dispatch(ctx, func(ctx context.Context) error {
			_, err := a.projects.Update(ctx, id, form)
			return err
		})
		return a.outcome(err, fmt.Sprintf("Project %s updated.", id))

	case "delete":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("projects delete <id>")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error { return a.projects.Delete(ctx, id) })
		return a.outcome(err, fmt.Sprintf("Project %s deleted.", id))

	case "assign":
		id := arg(rest, 0)
		ids := models.SplitIDs(strings.Join(rest[min(1, len(rest)):], ","))
		if id == "" || len(ids) == 0 {
			return a.usage("projects assign <id> <userId>[,<userId>...]")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error {
			_, err := a.projects.AssignUsers(ctx, id, ids)
			return err
		})
		return a.outcome(err, fmt.Sprintf("Assigned %s to project %s.", strings.Join(ids, ", "), id))

	default:
		return a.usage(
			"projects [list]                      list all projects",
			"projects show <id>                   show one project",
			"projects create                      create a project",
			"projects update <id>                 edit a project",
			"projects delete <id>                 delete a project",
			"projects assign <id> <userIds>       assign users (comma-separated ids)",
		)
	}
}

// assignedView lists the projects that name the signed-in user among their
// assigned users. The user is matched by username and by the token subject.
func (a *App) assignedView(ctx context.Context, _ []string) error {
	err := a.dispatch(ctx, a.projects.FetchAll)

	me := map[string]bool{}
	if sess, ok := a.sessions.Get(ctx); ok {
		me[sess.Username] = true
	}
	if token, terr := a.sessions.Token(ctx); terr == nil {
		if claims, cerr := session.ParseClaims(token); cerr == nil && claims.Subject != "" {
			me[claims.Subject] = true
		}
	}

	a.renderProjects(func(p models.Project) bool {
		return slices.ContainsFunc(p.AssignedUsers, func(u models.ID) bool { return me[string(u)] })
	})
	return err
}

func (a *App) renderProjects(keep func(models.Project) bool) {
	s := a.projects.Projects()
	if !banner(a, s) {
		return
	}
	rows := make([][]string, 0, len(s.Data))
	for _, p := range s.Data {
		if keep != nil && !keep(p) {
			continue
		}
		rows = append(rows, []string{
			string(p.ID), p.Name, string(p.Status), day(p.StartDate), day(p.EndDate),
			hours(p.TotalBilledHours) + "/" + hours(p.TotalBudgetHours),
		})
	}
	a.table([]string{"ID", "NAME", "STATUS", "START", "END", "BILLED/BUDGET"}, rows)
}

func (a *App) renderProject(p models.Project) {
	a.printf("ID:          %s\n", p.ID)
	a.printf("Name:        %s\n", p.Name)
	a.printf("Status:      %s\n", p.Status)
	a.printf("Dates:       %s .. %s\n", day(p.StartDate), day(p.EndDate))
	a.printf("Hours:       %s billed of %s budget\n", hours(p.TotalBilledHours), hours(p.TotalBudgetHours))
	a.printf("Assigned:    %s\n", strings.Join(models.Strings(p.AssignedUsers), ", "))
	if p.Description != "" {
		a.printf("Description:\n%s\n", p.Description)
	}
}

// day shortens an ISO timestamp to its date part.
func day(ts string) string {
	if len(ts) >= len(models.DayLayout) {
		return ts[:len(models.DayLayout)]
	}
	return ts
}

// projectForm reads the project form, offering the values of cur as
// defaults. Dates are entered as YYYY-MM-DD and sent as ISO midnight.
func (a *App) projectForm(cur models.Project) (models.NewProject, error) {
	withDefault := func(prompt, def string) (string, error) {
		if def != "" {
			prompt += " [" + def + "]"
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil || v != "" {
			return v, err
		}
		return def, nil
	}

	name, err := withDefault("Name", cur.Name)
	if err != nil {
		return models.NewProject{}, err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return models.NewProject{}, err
	}
	if description == "" {
		description = cur.Description
	}
	start, err := withDefault("Start date (YYYY-MM-DD)", day(cur.StartDate))
	if err != nil {
		return models.NewProject{}, err
	}
	end, err := withDefault("End date (YYYY-MM-DD)", day(cur.EndDate))
	if err != nil {
		return models.NewProject{}, err
	}
	status, err := getChoice(a.reader, "Status", a.out, projectStatuses, string(cur.Status))
	if err != nil {
		return models.NewProject{}, err
	}
	budget, err := withDefault("Budget hours", hours(cur.TotalBudgetHours))
	if err != nil {
		return models.NewProject{}, err
	}
	assigned, err := withDefault("Assigned user ids (comma-separated)", strings.Join(models.Strings(cur.AssignedUsers), ","))
	if err != nil {
		return models.NewProject{}, err
	}

	np := models.NewProject{
		Name:             name,
		Description:      description,
		Status:           models.ProjectStatus(status),
		AssignedUsers:    models.SplitIDs(assigned),
		TotalBilledHours: cur.TotalBilledHours,
	}
	if np.StartDate, err = models.FormatDay(start); err != nil {
		return models.NewProject{}, err
	}
	if np.EndDate, err = models.FormatDay(end); err != nil {
		return models.NewProject{}, err
	}
	if budget != "" {
		if np.TotalBudgetHours, err = strconv.ParseFloat(budget, 64); err != nil {
			return models.NewProject{}, fmt.Errorf("%w: budget hours must be a number", models.ErrValidation)
		}
	}
	return np, np.Validate()
}
