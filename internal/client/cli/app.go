package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/config"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/client/report"
	"github.com/dmitrijs2005/timesheets/internal/client/services"
	"github.com/dmitrijs2005/timesheets/internal/client/session"
	"github.com/dmitrijs2005/timesheets/internal/client/state"
	"github.com/dmitrijs2005/timesheets/internal/logging"
)

// sessionStore is what the App needs from session.Store.
type sessionStore interface {
	session.Reader
	Hydrate(ctx context.Context) (bool, error)
}

type App struct {
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader
	now    func() time.Time

	sessions   sessionStore
	gate       *session.Gate
	auth       *state.AuthStore
	users      *state.UserStore
	projects   *state.ProjectStore
	timesheets *state.TimesheetStore
	metrics    *state.MetricsStore
	sink       report.Sink

	route   string
	closers []func() error
}

// appDeps is everything newApp wires together. NewApp builds the real set;
// tests pass fakes.
type appDeps struct {
	log        logging.Logger
	in         io.Reader
	out        io.Writer
	sessions   sessionStore
	auth       services.AuthService
	users      services.UserService
	projects   services.ProjectService
	timesheets services.TimesheetService
	metrics    services.MetricsService
	sink       report.Sink
}

func newApp(d appDeps) *App {
	if d.log == nil {
		d.log = logging.Nop()
	}
	return &App{
		log:        d.log,
		out:        d.out,
		reader:     bufio.NewReader(d.in),
		now:        time.Now,
		sessions:   d.sessions,
		gate:       session.NewGate(d.sessions),
		auth:       state.NewAuthStore(d.auth),
		users:      state.NewUserStore(d.users),
		projects:   state.NewProjectStore(d.projects),
		timesheets: state.NewTimesheetStore(d.timesheets),
		metrics:    state.NewMetricsStore(d.metrics),
		sink:       d.sink,
		route:      routeLogin,
	}
}

// NewApp opens the session database, builds the API client and services and
// returns an App reading from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sessions := session.NewStore(db, log)
	api := client.NewAPIClient(c.APIBaseURL, sessions,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)

	sink, err := newSink(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(appDeps{
		log:        log,
		in:         os.Stdin,
		out:        os.Stdout,
		sessions:   sessions,
		auth:       services.NewAuthService(api, sessions),
		users:      services.NewUserService(api),
		projects:   services.NewProjectService(api),
		timesheets: services.NewTimesheetService(api),
		metrics:    services.NewMetricsService(api),
		sink:       sink,
	})
	api.SetUnauthorizedHandler(a.onUnauthorized)
	a.closers = append(a.closers, db.Close)

	return a, nil
}

func newSink(ctx context.Context, c *config.Config) (report.Sink, error) {
	if c.ExportBucket == "" {
		return report.FileSink{Dir: c.ExportDir}, nil
	}
	return report.NewS3Sink(ctx, report.S3Options{
		Bucket:    c.ExportBucket,
		Prefix:    c.ExportPrefix,
		Region:    c.AWSRegion,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	})
}

// Run restores a persisted session (or asks for credentials) and then runs
// the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to the Timesheets CLI (type 'help' for commands)")

	if a.restore(ctx) {
		sess, _ := a.sessions.Get(ctx)
		_ = a.Navigate(ctx, dashboardFor(sess.Role), nil)
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) restore(ctx context.Context) bool {
	ok, err := a.sessions.Hydrate(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
		return false
	}
	if !ok {
		return false
	}

	sess, ok := a.sessions.Get(ctx)
	if !ok {
		return false
	}
	a.auth.Restore(sess)
	a.printf("Signed in as %s (%s)\n", sess.Username, sess.Role)
	return true
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.gate.Check(ctx) == session.DecisionRender
}

func (a *App) getStatus() string {
	sess := a.auth.State().Data
	if sess == nil {
		return a.route
	}
	return fmt.Sprintf("(%s %s) %s", sess.Username, sess.Role, a.route)
}

// onUnauthorized runs when the server rejects the session token.
func (a *App) onUnauthorized(ctx context.Context) {
	a.endSession(ctx)
	a.println(sessionExpiredMessage)
}

func (a *App) endSession(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "clear session", "error", err)
	}
	a.users.Reset()
	a.projects.Reset()
	a.timesheets.Reset()
	a.metrics.Reset()
	a.route = routeLogin
}

// clearErrors drops errors left over from the previous screen.
func (a *App) clearErrors() {
	a.users.ClearErrors()
	a.projects.ClearErrors()
	a.timesheets.ClearErrors()
	a.metrics.ClearErrors()
}

func dashboardFor(role models.Role) string {
	if role == models.RoleAdmin {
		return routeAdmin
	}
	return routeUser
}

// silent reports whether err has already been dealt with by the
// unauthorized handler.
func silent(err error) bool {
	return errors.Is(err, client.ErrUnauthorized)
}
