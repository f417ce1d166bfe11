// Package client is the HTTP adapter between the client services and the
// timesheet REST API.
//
// # Overview
//
// APIClient owns the base URL, attaches the bearer token of the current
// session to every non-anonymous request, tags each call with an
// X-Request-ID and decodes JSON responses. Every non-2xx response becomes an
// *APIError whose Message is taken from the response body when the server
// sent one.
//
// A 401 on an authenticated request runs the unauthorized handler (see
// WithUnauthorizedHandler) before the error is returned, so session
// invalidation and the redirect to login happen the same way whichever
// service made the call.
//
// # Error Handling
//
// Callers match with errors.Is: ErrUnavailable (transport failure),
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrBadResponse. Message turns
// any error into the text a view should display.
//
// The package also bootstraps the local SQLite store (InitDatabase,
// RunMigrations) used for durable session storage.
package client
