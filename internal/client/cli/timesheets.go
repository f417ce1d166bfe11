package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/report"
)

func (a *App) timesheetsView(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "summary")

	switch sub {
	case "user":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("timesheets user <userId>")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error { return a.timesheets.FetchByUser(ctx, id) })
		a.renderTimesheets()
		return err

	case "project":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("timesheets project <projectId> [start] [end]")
		}
		start, end := arg(rest, 1), arg(rest, 2)
		if err := checkDays(start, end); err != nil {
			return a.outcome(err, "")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error {
			return a.timesheets.FetchByProject(ctx, id, start, end)
		})
		a.renderTimesheets()
		return err

	case "show":
		return a.showTimesheet(ctx, arg(rest, 0))

	case "approve":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("timesheets approve <id>")
		}
		if !a.reviewable(id) {
			return nil
		}
		err := a.dispatch(ctx, func(ctx context.Context) error {
			_, err := a.timesheets.Approve(ctx, id)
			return err
		})
		return a.outcome(err, fmt.Sprintf("Timesheet %s approved.", id))

	case "reject":
		id := arg(rest, 0)
		if id == "" {
			return a.usage("timesheets reject <id> [reason]")
		}
		if !a.reviewable(id) {
			return nil
		}
		reason := joinArgs(rest[1:])
		if reason == "" {
			var err error
			if reason, err = getSimpleText(a.reader, "Rejection reason", a.out); err != nil {
				return err
			}
		}
		if reason == "" {
			return a.outcome(fmt.Errorf("%w: rejection reason is required", models.ErrValidation), "")
		}
		err := a.dispatch(ctx, func(ctx context.Context) error {
			_, err := a.timesheets.Reject(ctx, id, reason)
			return err
		})
		return a.outcome(err, fmt.Sprintf("Timesheet %s rejected.", id))

	case "summary":
		err := a.dispatch(ctx, a.timesheets.FetchSummary)
		a.renderSummary()
		return err

	case "export":
		return a.exportTimesheets(ctx)

	default:
		return a.usage(
			"timesheets [summary]                          review totals",
			"timesheets user <userId>                      timesheets of a user",
			"timesheets project <projectId> [start] [end]  timesheets of a project",
			"timesheets show <id>                          show one timesheet",
			"timesheets approve <id>                       approve a timesheet",
			"timesheets reject <id> [reason]               reject a timesheet",
			"timesheets export                             export the last list as CSV",
		)
	}
}

func (a *App) myTimesheetsView(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")

	switch sub {
	case "list":
		err := a.dispatch(ctx, a.timesheets.FetchMine)
		a.renderTimesheets()
		return err

	case "submit":
		return a.submitTimesheet(ctx)

	case "show":
		return a.showTimesheet(ctx, arg(rest, 0))

	case "export":
		if err := a.dispatch(ctx, a.timesheets.FetchMine); err != nil {
			banner(a, a.timesheets.Timesheets())
			return err
		}
		return a.exportTimesheets(ctx)

	default:
		return a.usage(
			"mytimesheets [list]      list your timesheets",
			"mytimesheets submit      log hours against a project",
			"mytimesheets show <id>   show one timesheet",
			"mytimesheets export      export your timesheets as CSV",
		)
	}
}

// reviewable reports whether id may still be approved or rejected. Ids not in
// the current list are left for the server to decide.
func (a *App) reviewable(id string) bool {
	t, ok := a.timesheets.Find(id)
	if !ok || t.Status.AwaitingReview() {
		return true
	}
	a.printf("Timesheet %s is already %s.\n", id, t.Status)
	return false
}

func (a *App) showTimesheet(ctx context.Context, id string) error {
	if id == "" {
		return a.usage(a.route + " show <id>")
	}
	err := a.dispatch(ctx, func(ctx context.Context) error { return a.timesheets.FetchOne(ctx, id) })
	if s := a.timesheets.Current(); banner(a, s) && err == nil {
		t := s.Data
		a.printf("ID:          %s\n", t.ID)
		a.printf("User:        %s\n", t.UserID)
		a.printf("Project:     %s\n", t.ProjectID)
		a.printf("Date:        %s\n", day(t.Date))
		a.printf("Hours:       %s\n", hours(t.Hours))
		a.printf("Status:      %s\n", t.Status)
		if t.Description != "" {
			a.printf("Description: %s\n", t.Description)
		}
		if t.RejectionReason != "" {
			a.printf("Rejected:    %s\n", t.RejectionReason)
		}
	}
	return err
}

func (a *App) exportTimesheets(ctx context.Context) error {
	ts := a.timesheets.Timesheets().Data
	return a.export(ctx, "timesheets", func(w io.Writer) error {
		return report.WriteTimesheetsCSV(w, ts)
	})
}

func (a *App) renderTimesheets() {
	s := a.timesheets.Timesheets()
	if !banner(a, s) {
		return
	}
	rows := make([][]string, 0, len(s.Data))
	for _, t := range s.Data {
		rows = append(rows, []string{string(t.ID), string(t.UserID), string(t.ProjectID), day(t.Date), hours(t.Hours), string(t.Status)})
	}
	a.table([]string{"ID", "USER", "PROJECT", "DATE", "HOURS", "STATUS"}, rows)
}

func (a *App) renderSummary() {
	s := a.timesheets.Summary()
	if !banner(a, s) {
		return
	}
	a.printf("Submitted:    %d\n", s.Data.TotalSubmittedTimesheets)
	a.printf("Approved:     %d\n", s.Data.TotalApprovedTimesheets)
	a.printf("Rejected:     %d\n", s.Data.TotalRejectedTimesheets)
	a.printf("Billed hours: %s\n", hours(s.Data.TotalBilledHours))
}

// submitTimesheet reads the timesheet form. Required fields and a positive
// hour count are checked before anything is sent.
func (a *App) submitTimesheet(ctx context.Context) error {
	projectID, err := getSimpleText(a.reader, "Project id", a.out)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	rawHours, err := getSimpleText(a.reader, "Hours", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	nt := models.NewTimesheet{ProjectID: projectID, Date: date, Description: description}
	if date != "" {
		if _, err := models.ParseDay(date); err != nil {
			return a.outcome(err, "")
		}
	}
	if rawHours != "" {
		if nt.Hours, err = strconv.ParseFloat(rawHours, 64); err != nil {
			return a.outcome(fmt.Errorf("%w: hours must be a number", models.ErrValidation), "")
		}
	}
	if err := nt.Validate(); err != nil {
		return a.outcome(err, "")
	}

	var created models.Timesheet
	err = a.dispatch(ctx, func(ctx context.Context) error {
		var err error
		created, err = a.timesheets.Submit(ctx, nt)
		return err
	})
	return a.outcome(err, fmt.Sprintf("Timesheet submitted (id %s).", created.ID))
}

func checkDays(days ...string) error {
	for _, d := range days {
		if d == "" {
			continue
		}
		if _, err := models.ParseDay(d); err != nil {
			return err
		}
	}
	return nil
}
