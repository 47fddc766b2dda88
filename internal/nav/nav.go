// Package nav holds the process-wide navigation handle.
//
// The session guard runs underneath the HTTP layer, outside any command's
// control flow, so it has no path to a navigation capability other than this
// package-level handle. The handle is set once at startup (last write wins
// across resets) and read whenever an auth failure forces a redirect.
package nav

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Route identifies a destination for a forced redirect.
type Route string

const (
	// RouteSignIn is the destination after an expired or rejected session.
	RouteSignIn Route = "SignIn"

	// RouteSignUp is the destination after the account no longer exists.
	RouteSignUp Route = "SignUp"
)

// Navigator performs a navigation reset: all history is discarded and the
// process lands on the given route.
type Navigator interface {
	Reset(route Route)
}

var (
	mu      sync.RWMutex
	current Navigator
)

// Set installs the active navigator. May be called more than once; the last
// write wins.
func Set(n Navigator) {
	mu.Lock()
	current = n
	mu.Unlock()
}

// Reset forwards to the active navigator. If none is set yet the reset is
// dropped with a log entry rather than a panic, and false is returned.
func Reset(route Route) bool {
	mu.RLock()
	n := current
	mu.RUnlock()

	if n == nil {
		slog.Warn("navigation handle not set, dropping redirect", slog.String("route", string(route)))
		return false
	}
	n.Reset(route)
	return true
}

// Console is the CLI rendition of a navigation tree: a reset prints where the
// session landed and what to run next.
type Console struct {
	Out io.Writer
}

// Reset implements Navigator.
func (c *Console) Reset(route Route) {
	switch route {
	case RouteSignIn:
		fmt.Fprintln(c.Out, "session expired: signed out (run: roster login)")
	case RouteSignUp:
		fmt.Fprintln(c.Out, "account no longer exists: signed out (run: roster register)")
	default:
		fmt.Fprintf(c.Out, "signed out (%s)\n", route)
	}
}
