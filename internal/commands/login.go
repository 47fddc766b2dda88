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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in and store the access token" }
func (c *LoginCmd) Usage() string     { return "roster login [common flags] <email> <password>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: email and password required")
		return exitcode.UserError
	}
	email, password := args[0], args[1]

	resp, err := svc.Login(ctx, email, password)
	if err != nil {
		if apiErr := service.AsError(err); apiErr != nil {
			switch apiErr.Reason {
			case service.ReasonNoSuchAccount:
				fmt.Fprintln(errOut, "error: no account exists for that email")
			case service.ReasonIncorrectPassword:
				fmt.Fprintln(errOut, "error: incorrect password")
			case service.ReasonAccountNotVerified:
				fmt.Fprintln(errOut, "error: account not verified, check your email")
			default:
				fmt.Fprintf(errOut, "error: %s\n", apiErr.Error())
			}
			return exitcode.AuthError
		}
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgLogin {
		return writeUnexpected(errOut, resp.Message)
	}

	// Ensure config directory exists
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	tokenStore(cfg).Save(resp.AccessToken)
	if !cfg.HasToken() {
		fmt.Fprintln(errOut, "error: failed to save token")
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
