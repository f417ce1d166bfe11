package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/session"
)

func (a *App) adminDashboard(ctx context.Context, _ []string) error {
	a.println("Admin Dashboard")
	err := a.dispatch(ctx, a.metrics.Fetch)
	a.renderTiles()
	a.println()
	a.usage(
		"users          manage users and weekly utilization",
		"projects       manage projects and assignments",
		"timesheets     review and approve timesheets",
		"metrics        dashboard metrics and utilization",
		"profile        your account",
	)
	return err
}

func (a *App) userDashboard(ctx context.Context, _ []string) error {
	a.println("User Dashboard")
	err := a.dispatch(ctx, a.timesheets.FetchMine)
	if s := a.timesheets.Timesheets(); banner(a, s) {
		counts := map[models.TimesheetStatus]int{}
		for _, t := range s.Data {
			if t.Status.AwaitingReview() {
				counts[models.TimesheetSubmitted]++
				continue
			}
			counts[t.Status]++
		}
		a.printf("Timesheets: %d submitted, %d approved, %d rejected\n",
			counts[models.TimesheetSubmitted], counts[models.TimesheetApproved], counts[models.TimesheetRejected])
	}
	a.println()
	a.usage(
		"mytimesheets   list and submit your timesheets",
		"assigned       projects you are assigned to",
		"profile        your account",
	)
	return err
}

func (a *App) profileView(ctx context.Context, _ []string) error {
	sess, _ := a.sessions.Get(ctx)
	a.printf("Username: %s\n", sess.Username)
	a.printf("Role:     %s\n", sess.Role)

	token, err := a.sessions.Token(ctx)
	if err != nil {
		return nil
	}
	claims, err := session.ParseClaims(token)
	if err != nil {
		a.log.Debug(ctx, "profile: unreadable token", "error", err)
		return nil
	}
	if claims.Subject != "" {
		a.printf("Subject:  %s\n", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		state := "valid until"
		if claims.Expired(a.now()) {
			state = "expired at"
		}
		a.printf("Session:  %s %s\n", state, claims.ExpiresAt.Local().Format(time.DateTime))
	}
	return nil
}
