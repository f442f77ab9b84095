// Package session holds the current-user pointer: a single service-wide
// value naming whichever user completed the most recent successful login.
//
// This is the legacy identity model the API is built around. Bookmark
// requests do not present a credential; the server answers "who is asking"
// by reading this pointer. Two clients logging in concurrently race on it
// (last write wins, globally), and there is no logout, so the pointer is
// only ever overwritten, never cleared. The CurrentUser interface exists so
// the pointer can be swapped for per-request token resolution without
// touching the services.
package session

import (
	"context"
	"errors"
)

// ErrUnset is returned by Get before any login has ever happened. Callers
// must keep it distinct from a user lookup miss: an unset pointer means the
// request cannot even be attributed, not that a record is missing.
var ErrUnset = errors.New("session pointer unset")

type CurrentUser interface {
	// Set durably overwrites the pointer with the given user id.
	Set(ctx context.Context, userID string) error
	// Get returns the current user id, or ErrUnset if no login has occurred.
	Get(ctx context.Context) (string, error)
}
