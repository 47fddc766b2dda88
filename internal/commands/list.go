package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/output"
	"roster/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command: every task, member view.
// Handles `roster` with no args as well.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "roster list [common flags]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "error: list takes no arguments")
		return exitcode.UserError
	}

	resp, err := svc.AllTasks(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgTasksRetrieved {
		return writeUnexpected(errOut, resp.Message)
	}

	if len(resp.SortedTasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
		return exitcode.Success
	}

	output.FormatTaskSnapshot(out, resp.TaskSnapshot)
	return exitcode.Success
}
