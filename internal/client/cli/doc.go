// Package cli provides the interactive timesheets command-line client.
//
// It wires configuration, the local session database, the REST API client,
// the domain services and their state stores, and runs a REPL on top. Every
// REPL command is a route: "navigating" switches the active route, and
// guarded routes pass the session gate first (redirect to login, "not
// authorized" notice, or render).
//
// Routes:
//   - login                      (public)
//   - admin, users, projects, timesheets, metrics   (ADMIN)
//   - user, assigned, mytimesheets                  (USER)
//   - profile                                       (USER, ADMIN)
//
// Views print "Loading..." while their store is pending and "Error: <msg>"
// when it failed. A 401 from the server clears the session and sends the
// REPL back to the login route, whichever view made the call.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
