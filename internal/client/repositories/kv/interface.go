// Package kv is the durable key/value storage of the client. It plays the
// role browser local storage plays for a web front end: the session token
// and the serialized user live here between runs.
package kv

import (
	"context"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
