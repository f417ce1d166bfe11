package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/dmitrijs2005/timesheets/internal/common"
)

// getSimpleText, getPassword, getChoice and getMultiline are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
	getMultiline  = GetMultiline
)

func roleNames() []string {
	names := make([]string, 0, len(models.Roles))
	for _, r := range models.Roles {
		names = append(names, string(r))
	}
	return names
}

// Login prompts for username, password and role and signs in.
//
// A server failure prints a single generic message. If the server reports a
// different role than the one selected the new session is discarded and the
// user stays on the login route. On success the REPL moves to the dashboard
// of the role.
func (a *App) Login(ctx context.Context) error {
	a.route = routeLogin

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	roleName, err := getChoice(a.reader, "Select role", a.out, roleNames(), "")
	if err != nil {
		a.println("Error:", err)
		return err
	}

	if username == "" || len(password) == 0 || roleName == "" {
		a.println("Error: username, password and role are required")
		return fmt.Errorf("%w: incomplete login form", models.ErrValidation)
	}
	role := models.Role(roleName)

	a.println(loadingMessage)
	sess, err := a.auth.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "username", username, "error", err)
		if errors.Is(err, models.ErrValidation) {
			a.println("Error: " + client.Message(err))
		} else {
			a.println(loginFailedMessage)
		}
		return err
	}

	if sess.Role != role {
		a.log.Info(ctx, "login role mismatch", "username", username, "selected", role, "actual", sess.Role)
		if err := a.auth.Logout(ctx); err != nil {
			a.log.Warn(ctx, "clear session", "error", err)
		}
		a.println(wrongRoleMessage)
		return nil
	}

	a.log.Info(ctx, "login successful", "username", sess.Username, "role", sess.Role)
	a.printf("Welcome, %s!\n", sess.Username)
	return a.Navigate(ctx, dashboardFor(sess.Role), nil)
}

// Logout ends the session in memory and on disk and drops all loaded data.
func (a *App) Logout(ctx context.Context) error {
	a.endSession(ctx)
	a.println("Logged out.")
	return nil
}
