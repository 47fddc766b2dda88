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
	Register(&RenameFirstCmd{})
	Register(&RenameLastCmd{})
	Register(&DeleteAccountCmd{})
}

// RenameFirstCmd implements the rename-first command.
type RenameFirstCmd struct{}

func (c *RenameFirstCmd) Name() string      { return "rename-first" }
func (c *RenameFirstCmd) Aliases() []string { return nil }
func (c *RenameFirstCmd) Synopsis() string  { return "Change your first name" }
func (c *RenameFirstCmd) Usage() string     { return "roster rename-first [common flags] <name>" }
func (c *RenameFirstCmd) NeedsAuth() bool   { return true }

func (c *RenameFirstCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RenameFirstCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	resp, err := svc.UpdateFirstName(ctx, args[0])
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgFirstNameUpdated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// RenameLastCmd implements the rename-last command.
type RenameLastCmd struct{}

func (c *RenameLastCmd) Name() string      { return "rename-last" }
func (c *RenameLastCmd) Aliases() []string { return nil }
func (c *RenameLastCmd) Synopsis() string  { return "Change your last name" }
func (c *RenameLastCmd) Usage() string     { return "roster rename-last [common flags] <name>" }
func (c *RenameLastCmd) NeedsAuth() bool   { return true }

func (c *RenameLastCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RenameLastCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: name required")
		return exitcode.UserError
	}

	resp, err := svc.UpdateLastName(ctx, args[0])
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgLastNameUpdated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// DeleteAccountCmd implements the delete-account command.
type DeleteAccountCmd struct {
	force bool
}

func (c *DeleteAccountCmd) Name() string      { return "delete-account" }
func (c *DeleteAccountCmd) Aliases() []string { return nil }
func (c *DeleteAccountCmd) Synopsis() string  { return "Delete your account" }
func (c *DeleteAccountCmd) Usage() string     { return "roster delete-account [common flags] --force" }
func (c *DeleteAccountCmd) NeedsAuth() bool   { return true }

func (c *DeleteAccountCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *DeleteAccountCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if !c.force {
		fmt.Fprintln(errOut, "error: deleting your account is permanent, pass --force to confirm")
		return exitcode.UserError
	}

	resp, err := svc.DeleteAccount(ctx)
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgAccountDeleted {
		return writeUnexpected(errOut, resp.Message)
	}

	// The session is gone with the account.
	tokenStore(cfg).Remove()

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
