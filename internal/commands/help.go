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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "roster help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  roster                                             List all tasks
  roster list [common flags]
  roster mine [common flags]                         List your assignments
  roster mine [common flags] --pending               Assignments awaiting status confirmation
  roster signup [common flags] <task-id>
  roster drop [common flags] <assignment-id>
  roster done [common flags] [--status Completed|Incompleted] <assignment-id>
  roster watch [common flags]                        Follow live task updates

Coordinator:
  roster board [common flags]                        Tasks with assignees
  roster users [common flags]
  roster add [common flags] [--type <t>] [--desc <d>] [--start <ts>] [--end <ts>] [--max <n>] <name...>
  roster update [common flags] [--name <n>] [task field flags] <task-id>
  roster rm [common flags] [--force] <task-id>
  roster assign [common flags] <user-id> <task-id>
  roster reassign [common flags] <assignment-id> <user-id>
  roster unassign [common flags] <assignment-id>

Account:
  roster login [common flags] <email> <password>
  roster logout [common flags]
  roster register [common flags] <email> <password> <first-name> <last-name>
  roster forgot-password [common flags] <email>
  roster reset-password [common flags] <reset-token> <new-password>
  roster profile [common flags]
  roster rename-first [common flags] <name>
  roster rename-last [common flags] <name>
  roster delete-account [common flags] --force
  roster help
  roster version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
