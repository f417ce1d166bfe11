package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/report"
	"github.com/dmitrijs2005/timesheets/internal/common"
)

func (a *App) usersView(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")

	switch sub {
	case "list":
		err := a.dispatch(ctx, a.users.FetchAll)
		a.renderUsers()
		return err

	case "show":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("users show <id>")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error { return a.users.FetchOne(ctx, id) })
		if s := a.users.Selected(); banner(a, s) && err == nil {
			u := s.Data
			a.printf("ID:       %s\nUsername: %s\nEmail:    %s\nRole:     %s\n", u.ID, u.Username, u.Email, u.Role)
		}
		return err

	case "create":
		return a.createUser(ctx)

	case "delete":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("users delete <id>")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error { return a.users.Delete(ctx, id) })
		return a.outcome(err, fmt.Sprintf("User %s deleted.", id))

	case "stats":
		err := a.fetchWeeklyStats(ctx, rest)
		a.renderUtilization()
		return err

	case "export":
		if err := a.fetchWeeklyStats(ctx, rest); err != nil {
			banner(a, a.users.WeeklyStats())
			return err
		}
		stats := a.users.WeeklyStats().Data
		return a.export(ctx, "utilization", func(w io.Writer) error {
			return report.WriteUtilizationCSV(w, stats)
		})

	default:
		return a.usage(
			"users [list]                 list all users",
			"users show <id>              show one user",
			"users create                 create a user",
			"users delete <id>            delete a user",
			"users stats [start] [end]    weekly utilization (YYYY-MM-DD)",
			"users export [start] [end]   export weekly utilization as CSV",
		)
	}
}

func (a *App) fetchWeeklyStats(ctx context.Context, args []string) error {
	start, end := arg(args, 0), arg(args, 1)
	if err := checkDays(start, end); err != nil {
		return a.outcome(err, "")
	}
	return a.dispatch(ctx, func(ctx context.Context) error {
		return a.users.FetchWeeklyStats(ctx, start, end)
	})
}

func (a *App) renderUsers() {
	s := a.users.Users()
	if !banner(a, s) {
		return
	}
	rows := make([][]string, 0, len(s.Data))
	for _, u := range s.Data {
		rows = append(rows, []string{string(u.ID), u.Username, u.Email, string(u.Role)})
	}
	a.table([]string{"ID", "USERNAME", "EMAIL", "ROLE"}, rows)
}

func (a *App) renderUtilization() {
	s := a.users.WeeklyStats()
	if !banner(a, s) {
		return
	}

	u := report.Summarize(s.Data)
	a.printf("Active Users:        %d / %d\n", u.ActiveUsers, u.TotalUsers)
	a.printf("Average Utilization: %s\n", percent(u.AverageUtilization))
	a.printf("Peak Utilization:    %s\n", percent(u.PeakUtilization))

	rows := make([][]string, 0, len(s.Data))
	for _, st := range s.Data {
		rows = append(rows, []string{
			st.Username,
			hours(st.TotalHours) + "h",
			report.Bar(st.UtilizationPercentage, 20) + " " + percent(st.UtilizationPercentage),
			st.WeekStartDate,
		})
	}
	a.table([]string{"USERNAME", "TOTAL HOURS", "UTILIZATION", "WEEK STARTING"}, rows)
}

// createUser reads the create-user form. The password confirmation is
// checked before anything is sent.
func (a *App) createUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	role, err := getChoice(a.reader, "Role", a.out, roleNames(), string(models.RoleUser))
	if err != nil {
		a.println("Error:", err)
		return err
	}

	nu := models.NewUser{
		Username:        username,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		Role:            models.Role(role),
	}
	if err := nu.Validate(); err != nil {
		return a.outcome(err, "")
	}

	var created models.User
	err = a.dispatch(ctx, func(ctx context.Context) error {
		var err error
		created, err = a.users.Create(ctx, nu)
		return err
	})
	return a.outcome(err, fmt.Sprintf("User %s created (id %s).", created.Username, created.ID))
}
