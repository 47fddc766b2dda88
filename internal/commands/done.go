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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: update an assignment's completion
// status once its task is over.
type DoneCmd struct {
	status string
}

// SetStatus sets the status flag (for testing).
func (c *DoneCmd) SetStatus(status string) {
	c.status = status
}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark an assignment completed" }
func (c *DoneCmd) Usage() string {
	return "roster done [common flags] [--status Completed|Incompleted] <assignment-id>"
}
func (c *DoneCmd) NeedsAuth() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", string(service.StatusCompleted), "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: assignment id required")
		return exitcode.UserError
	}

	if c.status == "" {
		c.status = string(service.StatusCompleted)
	}
	status := service.AssignmentStatus(c.status)
	switch status {
	case service.StatusCompleted, service.StatusIncompleted:
	default:
		fmt.Fprintf(errOut, "error: invalid status: %s\n", c.status)
		return exitcode.UserError
	}

	resp, err := svc.UpdateStatus(ctx, args[0], status)
	if err != nil {
		if apiErr := service.AsError(err); apiErr != nil && apiErr.Reason == service.ReasonTaskNotOver {
			fmt.Fprintln(errOut, "error: task is not over yet")
			return exitcode.UserError
		}
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgStatusUpdated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
