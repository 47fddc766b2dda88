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
	Register(&UnassignCmd{})
	Register(&SignupCmd{})
	Register(&DropCmd{})
}

// UnassignCmd implements the unassign command (coordinator: delete an
// assignment).
type UnassignCmd struct{}

func (c *UnassignCmd) Name() string      { return "unassign" }
func (c *UnassignCmd) Aliases() []string { return nil }
func (c *UnassignCmd) Synopsis() string  { return "Delete an assignment" }
func (c *UnassignCmd) Usage() string     { return "roster unassign [common flags] <assignment-id>" }
func (c *UnassignCmd) NeedsAuth() bool   { return true }

func (c *UnassignCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UnassignCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: assignment id required")
		return exitcode.UserError
	}

	resp, err := svc.DeleteAssignment(ctx, args[0])
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgAssignmentDeleted {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// SignupCmd implements the signup command (member: sign up for a task).
type SignupCmd struct{}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return nil }
func (c *SignupCmd) Synopsis() string  { return "Sign up for a task" }
func (c *SignupCmd) Usage() string     { return "roster signup [common flags] <task-id>" }
func (c *SignupCmd) NeedsAuth() bool   { return true }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	resp, err := svc.SignupTask(ctx, args[0])
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

// DropCmd implements the drop command (member: drop an assignment).
type DropCmd struct{}

func (c *DropCmd) Name() string      { return "drop" }
func (c *DropCmd) Aliases() []string { return nil }
func (c *DropCmd) Synopsis() string  { return "Drop one of your assignments" }
func (c *DropCmd) Usage() string     { return "roster drop [common flags] <assignment-id>" }
func (c *DropCmd) NeedsAuth() bool   { return true }

func (c *DropCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DropCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: assignment id required")
		return exitcode.UserError
	}

	resp, err := svc.DropTask(ctx, args[0])
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgTaskDropped {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
