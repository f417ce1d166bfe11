package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/state"
)

const (
	loadingMessage        = "Loading..."
	notAuthorizedMessage  = "You are not authorized to access this page."
	loginRequiredMessage  = "Please log in to continue."
	sessionExpiredMessage = "Your session has expired. Please log in again."
	loginFailedMessage    = "Invalid credentials or server error"
	wrongRoleMessage      = "Incorrect role selected. Please choose the correct role."
)

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// dispatch shows the loading indicator while fn runs.
func (a *App) dispatch(ctx context.Context, fn func(ctx context.Context) error) error {
	a.println(loadingMessage)
	return fn(ctx)
}

// banner prints the loading or error line for s and reports whether the
// view has data worth rendering. A failed container still has its previous
// data.
func banner[T any](a *App, s state.Snapshot[T]) bool {
	switch s.Status {
	case state.StatusPending:
		a.println(loadingMessage)
		return false
	case state.StatusFailed:
		if !silent(s.Err) {
			a.println("Error: " + s.Message())
		}
		return true
	case state.StatusSucceeded:
		return true
	default:
		return false
	}
}

// outcome prints okMsg or the error line for a one-off mutation.
func (a *App) outcome(err error, okMsg string) error {
	switch {
	case err == nil:
		a.println(okMsg)
	case !silent(err):
		a.println("Error: " + client.Message(err))
	}
	return err
}

func (a *App) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		a.println("No records.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

func (a *App) usage(lines ...string) error {
	for _, l := range lines {
		a.println("  " + l)
	}
	return nil
}

func hours(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f)
}

// subcommand splits args into the first word (default def) and the rest.
func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 {
		return def, nil
	}
	return args[0], args[1:]
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
