package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/timesheets/internal/client/models"
)

type fakeSessions struct {
	sess       *models.Session
	token      string
	hydrateErr error
	cleared    int
}

func (f *fakeSessions) Get(context.Context) (models.Session, bool) {
	if f.sess == nil {
		return models.Session{}, false
	}
	return *f.sess, true
}

func (f *fakeSessions) Token(context.Context) (string, error) {
	if f.token == "" {
		return "", errors.New("no token")
	}
	return f.token, nil
}

func (f *fakeSessions) Hydrate(context.Context) (bool, error) {
	return f.sess != nil, f.hydrateErr
}

func (f *fakeSessions) set(sess models.Session, token string) {
	f.sess = &sess
	f.token = token
}

func (f *fakeSessions) Clear(context.Context) error {
	f.sess, f.token = nil, ""
	f.cleared++
	return nil
}

// fakeAuth stands in for the login endpoint. A successful login persists
// the server-reported session the way the real service does.
type fakeAuth struct {
	sessions *fakeSessions
	reply    models.Session
	err      error
	calls    int
}

func (f *fakeAuth) Login(_ context.Context, creds models.Credentials) (models.Session, error) {
	f.calls++
	if err := creds.Validate(); err != nil {
		return models.Session{}, err
	}
	if f.err != nil {
		return models.Session{}, f.err
	}
	f.sessions.set(f.reply, "tok")
	return f.reply, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.sessions.Clear(ctx) }

type fakeUsers struct {
	users   []models.User
	stats   []models.WeeklyUserStats
	err     error
	created []models.NewUser
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), f.err
}

func (f *fakeUsers) Get(_ context.Context, id string) (models.User, error) {
	return models.User{ID: models.ID(id), Username: "user-" + id, Role: models.RoleUser}, f.err
}

func (f *fakeUsers) Create(_ context.Context, u models.NewUser) (models.User, error) {
	f.created = append(f.created, u)
	return models.User{ID: "u9", Username: u.Username, Role: u.Role}, f.err
}

func (f *fakeUsers) Delete(context.Context, string) error { return f.err }

func (f *fakeUsers) WeeklyStats(context.Context, string, string) ([]models.WeeklyUserStats, error) {
	return f.stats, f.err
}

type fakeProjects struct {
	projects []models.Project
	err      error
	created  []models.NewProject
	updated  []models.NewProject
	assigned []string
}

func (f *fakeProjects) List(context.Context) ([]models.Project, error) {
	return append([]models.Project(nil), f.projects...), f.err
}

func (f *fakeProjects) Get(_ context.Context, id string) (models.Project, error) {
	for _, p := range f.projects {
		if p.ID == models.ID(id) {
			return p, f.err
		}
	}
	return models.Project{ID: models.ID(id)}, f.err
}

func (f *fakeProjects) Create(_ context.Context, p models.NewProject) (models.Project, error) {
	f.created = append(f.created, p)
	return models.Project{ID: "p9", Name: p.Name, Status: p.Status, AssignedUsers: models.IDs(p.AssignedUsers)}, f.err
}

func (f *fakeProjects) Update(_ context.Context, id string, p models.NewProject) (models.Project, error) {
	f.updated = append(f.updated, p)
	return models.Project{ID: models.ID(id), Name: p.Name, Status: p.Status}, f.err
}

func (f *fakeProjects) Delete(context.Context, string) error { return f.err }

func (f *fakeProjects) AssignUsers(_ context.Context, id string, userIDs []string) (models.Project, error) {
	f.assigned = userIDs
	return models.Project{ID: models.ID(id), AssignedUsers: models.IDs(userIDs)}, f.err
}

type fakeTimesheets struct {
	timesheets []models.Timesheet
	err        error
	submitted  []models.NewTimesheet
	approved   []string
	rejected   map[string]string
}

func (f *fakeTimesheets) ListMine(context.Context) ([]models.Timesheet, error) {
	return append([]models.Timesheet(nil), f.timesheets...), f.err
}

func (f *fakeTimesheets) ListByUser(context.Context, string) ([]models.Timesheet, error) {
	return f.ListMine(context.Background())
}

func (f *fakeTimesheets) ListByProject(context.Context, string, string, string) ([]models.Timesheet, error) {
	return f.ListMine(context.Background())
}

func (f *fakeTimesheets) Get(_ context.Context, id string) (models.Timesheet, error) {
	return models.Timesheet{ID: models.ID(id), Date: "2024-03-04T00:00:00.000Z", Hours: 8, Status: models.TimesheetSubmitted}, f.err
}

func (f *fakeTimesheets) Submit(_ context.Context, t models.NewTimesheet) (models.Timesheet, error) {
	f.submitted = append(f.submitted, t)
	return models.Timesheet{ID: "t9", ProjectID: models.ID(t.ProjectID), Hours: t.Hours, Status: models.TimesheetSubmitted}, f.err
}

func (f *fakeTimesheets) Approve(_ context.Context, id string) (models.Timesheet, error) {
	f.approved = append(f.approved, id)
	return models.Timesheet{ID: models.ID(id), Status: models.TimesheetApproved}, f.err
}

func (f *fakeTimesheets) Reject(_ context.Context, id, reason string) (models.Timesheet, error) {
	if f.rejected == nil {
		f.rejected = map[string]string{}
	}
	f.rejected[id] = reason
	return models.Timesheet{ID: models.ID(id), Status: models.TimesheetRejected, RejectionReason: reason}, f.err
}

func (f *fakeTimesheets) Summary(context.Context) (models.TimesheetSummary, error) {
	return models.TimesheetSummary{TotalSubmittedTimesheets: 3, TotalApprovedTimesheets: 2, TotalBilledHours: 16}, f.err
}

type fakeMetrics struct {
	err error
}

func (f *fakeMetrics) Dashboard(context.Context) (models.DashboardMetrics, error) {
	return models.DashboardMetrics{TotalUsers: 4, TotalProjects: 2, ActiveProjects: 1, PendingTimesheets: 3, TotalHoursLogged: 120}, f.err
}

type fakeSink struct {
	name string
	body string
	err  error
}

func (f *fakeSink) Put(_ context.Context, name string, body []byte) (string, error) {
	f.name, f.body = name, string(body)
	return "mem://" + name, f.err
}

type testApp struct {
	*App
	out        *bytes.Buffer
	sessions   *fakeSessions
	auth       *fakeAuth
	users      *fakeUsers
	projects   *fakeProjects
	timesheets *fakeTimesheets
	metrics    *fakeMetrics
	sink       *fakeSink
}

// newTestApp builds an App over fakes that reads input line by line. The
// password prompt always answers "pw".
func newTestApp(t *testing.T, input ...string) *testApp {
	t.Helper()

	origPw := getPassword
	getPassword = func(io.Writer, string) ([]byte, error) {
		return []byte("pw"), nil
	}
	t.Cleanup(func() { getPassword = origPw })

	ta := &testApp{
		out:        &bytes.Buffer{},
		sessions:   &fakeSessions{},
		users:      &fakeUsers{},
		projects:   &fakeProjects{},
		timesheets: &fakeTimesheets{},
		metrics:    &fakeMetrics{},
		sink:       &fakeSink{},
	}
	ta.auth = &fakeAuth{sessions: ta.sessions}

	in := strings.Join(input, "\n")
	if in != "" {
		in += "\n"
	}
	ta.App = newApp(appDeps{
		in:         strings.NewReader(in),
		out:        ta.out,
		sessions:   ta.sessions,
		auth:       ta.auth,
		users:      ta.users,
		projects:   ta.projects,
		timesheets: ta.timesheets,
		metrics:    ta.metrics,
		sink:       ta.sink,
	})
	ta.App.now = func() time.Time { return time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC) }
	return ta
}

// signIn puts a session in place without going through the login form.
func (ta *testApp) signIn(username string, role models.Role) {
	ta.sessions.set(models.Session{Username: username, Role: role}, "tok")
	ta.App.auth.Restore(models.Session{Username: username, Role: role})
}
