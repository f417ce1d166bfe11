// Package common contains constants and small helpers shared by the client
// layers.
package common

// Outbound HTTP header names and the bearer scheme prefix.
const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
	BearerPrefix        = "Bearer "
)

// Keys of the durable client-side storage. Both are written on login and
// removed together on logout.
const (
	TokenStorageKey = "token"
	UserStorageKey  = "user"
)
