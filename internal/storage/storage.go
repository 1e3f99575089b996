package storage

import "context"

// Store is a generic key-value persistence adapter. The session manager
// depends on this interface rather than on any concrete storage, so tests
// run against the in-memory implementation while production picks file,
// SQLite or Redis.
//
// Get reports absence through its second return value instead of an error:
// a missing key is an expected outcome, not a failure.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
