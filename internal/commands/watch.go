package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/live"
	"roster/internal/output"
	"roster/internal/service"
	"roster/internal/state"
)

func init() {
	Register(&WatchCmd{})
}

// WatchCmd implements the watch command: print the task board, then keep it
// current from the live update channel until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Name() string      { return "watch" }
func (c *WatchCmd) Aliases() []string { return nil }
func (c *WatchCmd) Synopsis() string  { return "Follow live task updates" }
func (c *WatchCmd) Usage() string     { return "roster watch [common flags]" }
func (c *WatchCmd) NeedsAuth() bool   { return true }

func (c *WatchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WatchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !requireLogin(cfg, errOut) {
		return exitcode.AuthError
	}

	tasks := state.NewTasksProvider(svc, tokenStore(cfg), slog.Default())

	ch, err := live.Dial(ctx, cfg.SocketURL, tasks, slog.Default())
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to open live channel: %v\n", err)
		return exitcode.BackendError
	}
	defer ch.Close()

	// Initial state comes from a fetch; the channel only covers changes that
	// happen while we are watching.
	tasks.Fetch(ctx)
	output.FormatTaskSnapshot(out, tasks.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return exitcode.Success
		case <-ch.Done():
			fmt.Fprintln(errOut, "error: live channel closed")
			return exitcode.BackendError
		case <-tasks.Updates():
			if !cfg.Quiet {
				output.FormatHeader(out, "tasks updated")
			}
			output.FormatTaskSnapshot(out, tasks.Snapshot())
		}
	}
}
