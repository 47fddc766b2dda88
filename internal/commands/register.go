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
	Register(&RegisterCmd{})
	Register(&ForgotPasswordCmd{})
	Register(&ResetPasswordCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct{}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "roster register [common flags] <email> <password> <first-name> <last-name>"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 4 {
		fmt.Fprintln(errOut, "error: email, password, first name and last name required")
		return exitcode.UserError
	}

	resp, err := svc.Register(ctx, service.RegisterInput{
		Email:     args[0],
		Password:  args[1],
		FirstName: args[2],
		LastName:  args[3],
	})
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgRegister {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "registered, verify your email before logging in")
	}
	return exitcode.Success
}

// ForgotPasswordCmd implements the forgot-password command.
type ForgotPasswordCmd struct{}

func (c *ForgotPasswordCmd) Name() string      { return "forgot-password" }
func (c *ForgotPasswordCmd) Aliases() []string { return nil }
func (c *ForgotPasswordCmd) Synopsis() string  { return "Request a password reset email" }
func (c *ForgotPasswordCmd) Usage() string     { return "roster forgot-password [common flags] <email>" }
func (c *ForgotPasswordCmd) NeedsAuth() bool   { return false }

func (c *ForgotPasswordCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ForgotPasswordCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}

	resp, err := svc.ForgotPassword(ctx, args[0])
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgForgotPassword {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "reset email sent")
	}
	return exitcode.Success
}

// ResetPasswordCmd implements the reset-password command.
type ResetPasswordCmd struct{}

func (c *ResetPasswordCmd) Name() string      { return "reset-password" }
func (c *ResetPasswordCmd) Aliases() []string { return nil }
func (c *ResetPasswordCmd) Synopsis() string  { return "Set a new password with a reset token" }
func (c *ResetPasswordCmd) Usage() string {
	return "roster reset-password [common flags] <reset-token> <new-password>"
}
func (c *ResetPasswordCmd) NeedsAuth() bool { return false }

func (c *ResetPasswordCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ResetPasswordCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: reset token and new password required")
		return exitcode.UserError
	}

	resp, err := svc.ResetPassword(ctx, args[0], args[1])
	if err != nil {
		if apiErr := service.AsError(err); apiErr != nil {
			switch apiErr.Reason {
			case service.ReasonResetLinkInvalid:
				fmt.Fprintln(errOut, "error: reset link is invalid or has expired")
				return exitcode.UserError
			case service.ReasonPasswordReused:
				fmt.Fprintln(errOut, "error: new password must differ from the previous one")
				return exitcode.UserError
			}
		}
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgResetPassword {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
