package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/output"
	"roster/internal/service"
	"roster/internal/state"
)

func init() {
	Register(&BoardCmd{})
	Register(&UsersCmd{})
	Register(&MineCmd{})
	Register(&ProfileCmd{})
}

// BoardCmd implements the board command: every task with its assigned users,
// coordinator view. Reads through the tasks provider.
type BoardCmd struct{}

func (c *BoardCmd) Name() string      { return "board" }
func (c *BoardCmd) Aliases() []string { return []string{"assignments"} }
func (c *BoardCmd) Synopsis() string  { return "Show all tasks with assignees" }
func (c *BoardCmd) Usage() string     { return "roster board [common flags]" }
func (c *BoardCmd) NeedsAuth() bool   { return true }

func (c *BoardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BoardCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !requireLogin(cfg, errOut) {
		return exitcode.AuthError
	}

	tasks := state.NewTasksProvider(svc, tokenStore(cfg), slog.Default())
	tasks.Fetch(ctx)

	snap := tasks.Snapshot()
	if len(snap.SortedTasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
		return exitcode.Success
	}

	output.FormatTaskSnapshot(out, snap)
	return exitcode.Success
}

// UsersCmd implements the users command: every registered user, coordinator
// view. Reads through the users provider.
type UsersCmd struct{}

func (c *UsersCmd) Name() string      { return "users" }
func (c *UsersCmd) Aliases() []string { return nil }
func (c *UsersCmd) Synopsis() string  { return "List registered users" }
func (c *UsersCmd) Usage() string     { return "roster users [common flags]" }
func (c *UsersCmd) NeedsAuth() bool   { return true }

func (c *UsersCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UsersCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !requireLogin(cfg, errOut) {
		return exitcode.AuthError
	}

	users := state.NewUsersProvider(svc, tokenStore(cfg), slog.Default())
	users.Fetch(ctx)

	list := users.Snapshot()
	if len(list) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no users")
		}
		return exitcode.Success
	}

	for _, u := range list {
		output.FormatUser(out, u)
	}
	return exitcode.Success
}

// MineCmd implements the mine command: the signed-in member's assignments.
// Reads through the user-tasks provider. With --pending it instead lists the
// finished assignments still awaiting a status confirmation.
type MineCmd struct {
	pending bool
}

func (c *MineCmd) Name() string      { return "mine" }
func (c *MineCmd) Aliases() []string { return nil }
func (c *MineCmd) Synopsis() string  { return "List your assignments" }
func (c *MineCmd) Usage() string     { return "roster mine [common flags] [--pending]" }
func (c *MineCmd) NeedsAuth() bool   { return true }

func (c *MineCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.pending, "pending", false, "")
}

func (c *MineCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !requireLogin(cfg, errOut) {
		return exitcode.AuthError
	}

	if c.pending {
		return c.runPending(ctx, cfg, svc, out, errOut)
	}

	mine := state.NewUserTasksProvider(svc, tokenStore(cfg), slog.Default())
	mine.Fetch(ctx)

	list := mine.Snapshot()
	if len(list) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no assignments")
		}
		return exitcode.Success
	}

	for _, ut := range list {
		output.FormatUserTask(out, ut)
	}
	return exitcode.Success
}

// runPending lists assignments whose task has ended without a confirmed
// status, the ones `roster done` is waiting on.
func (c *MineCmd) runPending(ctx context.Context, cfg *config.Config, svc service.Service, out, errOut io.Writer) int {
	resp, err := svc.MyPendingTasks(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgPendingTasksRetrieved {
		return writeUnexpected(errOut, resp.Message)
	}

	if len(resp.PendingTasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "nothing to confirm")
		}
		return exitcode.Success
	}

	for _, ut := range resp.PendingTasks {
		output.FormatUserTask(out, ut)
	}
	if !cfg.Quiet {
		fmt.Fprintln(out, "confirm each with: roster done [--status Completed|Incompleted] <assignment-id>")
	}
	return exitcode.Success
}

// ProfileCmd implements the profile command: the signed-in user's account
// data. Reads through the user-data provider.
type ProfileCmd struct{}

func (c *ProfileCmd) Name() string      { return "profile" }
func (c *ProfileCmd) Aliases() []string { return []string{"whoami"} }
func (c *ProfileCmd) Synopsis() string  { return "Show your account" }
func (c *ProfileCmd) Usage() string     { return "roster profile [common flags]" }
func (c *ProfileCmd) NeedsAuth() bool   { return true }

func (c *ProfileCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ProfileCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !requireLogin(cfg, errOut) {
		return exitcode.AuthError
	}

	me := state.NewUserDataProvider(svc, tokenStore(cfg), slog.Default())
	me.Fetch(ctx)

	u := me.Snapshot()
	if u.UserID == "" {
		fmt.Fprintln(errOut, "error: could not load profile")
		return exitcode.BackendError
	}

	output.FormatUser(out, u)
	return exitcode.Success
}
