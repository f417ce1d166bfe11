package client

import (
	"context"
	"net/url"
)

// Request describes one API call. Path is relative to the base URL
// ("/projects/42"). Anonymous requests carry no bearer token and never
// trigger the unauthorized handler.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Anonymous bool
}

// Client is the transport contract the domain services depend on.
type Client interface {
	// Do performs r and decodes a 2xx JSON body into out (which may be nil).
	Do(ctx context.Context, r Request, out any) error
}

// TokenSource yields the bearer token of the current session, or "" when
// there is none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
