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
	Register(&AssignCmd{})
	Register(&ReassignCmd{})
}

// writeAssignConflict maps the assignment conflict reasons to messages.
// Returns -1 when the reason is not an assignment conflict.
func writeAssignConflict(errOut io.Writer, err error) int {
	apiErr := service.AsError(err)
	if apiErr == nil {
		return -1
	}
	switch apiErr.Reason {
	case service.ReasonAssignmentExists:
		fmt.Fprintln(errOut, "error: assignment already exists")
	case service.ReasonDoerNotFree:
		fmt.Fprintln(errOut, "error: user is not free at that time")
	case service.ReasonMaxParticipants:
		fmt.Fprintln(errOut, "error: maximum participants reached")
	default:
		return -1
	}
	return exitcode.UserError
}

// AssignCmd implements the assign command (coordinator: create an assignment).
type AssignCmd struct{}

func (c *AssignCmd) Name() string      { return "assign" }
func (c *AssignCmd) Aliases() []string { return nil }
func (c *AssignCmd) Synopsis() string  { return "Assign a task to a user" }
func (c *AssignCmd) Usage() string     { return "roster assign [common flags] <user-id> <task-id>" }
func (c *AssignCmd) NeedsAuth() bool   { return true }

func (c *AssignCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AssignCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: user id and task id required")
		return exitcode.UserError
	}

	resp, err := svc.AssignTask(ctx, args[0], args[1])
	if err != nil {
		if code := writeAssignConflict(errOut, err); code >= 0 {
			return code
		}
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgAssignmentCreated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// ReassignCmd implements the reassign command (coordinator: move an
// assignment to another user).
type ReassignCmd struct{}

func (c *ReassignCmd) Name() string      { return "reassign" }
func (c *ReassignCmd) Aliases() []string { return nil }
func (c *ReassignCmd) Synopsis() string  { return "Move an assignment to another user" }
func (c *ReassignCmd) Usage() string {
	return "roster reassign [common flags] <assignment-id> <user-id>"
}
func (c *ReassignCmd) NeedsAuth() bool { return true }

func (c *ReassignCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReassignCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: assignment id and user id required")
		return exitcode.UserError
	}

	resp, err := svc.UpdateAssignment(ctx, args[0], args[1])
	if err != nil {
		if code := writeAssignConflict(errOut, err); code >= 0 {
			return code
		}
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgAssignmentUpdated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
