package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/service"
	"roster/internal/token"
)

// tokenStore opens the token store under the config directory.
func tokenStore(cfg *config.Config) token.Store {
	return token.NewFileStore(cfg.TokenPath(), slog.Default())
}

// writeError prints err and returns the matching exit code. Commands with a
// closed set of expected reasons handle those before falling through here.
func writeError(errOut io.Writer, err error) int {
	if errors.Is(err, service.ErrNoToken) {
		fmt.Fprintln(errOut, "error: not logged in (run: roster login)")
		return exitcode.AuthError
	}
	if apiErr := service.AsError(err); apiErr != nil {
		fmt.Fprintf(errOut, "error: %s\n", apiErr.Error())
		switch apiErr.Status {
		case 401, 403:
			return exitcode.AuthError
		}
		return exitcode.BackendError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}

// writeUnexpected reports a 2xx response whose message doesn't match the
// expected literal. The message text is the success contract, so anything
// else is treated as a failure.
func writeUnexpected(errOut io.Writer, got string) int {
	fmt.Fprintf(errOut, "error: unexpected response: %s\n", got)
	return exitcode.BackendError
}

// requireLogin checks for a stored token before a provider-backed read.
// Providers are deliberately silent when the token is missing, so commands
// that rely on them surface the auth error themselves.
func requireLogin(cfg *config.Config, errOut io.Writer) bool {
	if cfg.HasToken() {
		return true
	}
	fmt.Fprintln(errOut, "error: not logged in (run: roster login)")
	return false
}
