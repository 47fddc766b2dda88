package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command (coordinator: delete a task and its
// assignments).
type RmCmd struct {
	force bool
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "roster rm [common flags] [--force] <task-id>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	// Deleting a task discards its assignments with it.
	if !c.force {
		fmt.Fprintln(errOut, "error: deleting a task removes its assignments, pass --force to confirm")
		return exitcode.UserError
	}

	resp, err := svc.DeleteTask(ctx, args[0])
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgTaskDeleted {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
