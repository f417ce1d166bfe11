// Package session keeps the authenticated identity of the client.
//
// Store holds the current Session and its bearer token in memory and mirrors
// both into the durable key/value storage so a restarted client can pick the
// session up again (Hydrate). Reads always consult memory first and fall back
// to the persisted copy; an unreadable persisted record counts as no session.
//
// Gate answers one question per guarded route: render it, send the user to
// login, or show the not-authorized notice. It only reads.
package session
