package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/service"
)

func init() {
	Register(&AddCmd{})
	Register(&UpdateCmd{})
}

// taskFlags are the shared task field flags for add and update.
type taskFlags struct {
	taskType    string
	description string
	start       string
	end         string
	max         int
}

func (f *taskFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.taskType, "type", "", "")
	fs.StringVar(&f.description, "desc", "", "")
	fs.StringVar(&f.start, "start", "", "")
	fs.StringVar(&f.end, "end", "", "")
	fs.IntVar(&f.max, "max", 0, "")
}

func (f *taskFlags) input(name string) service.TaskInput {
	in := service.TaskInput{
		TaskName:    name,
		TaskType:    f.taskType,
		Description: f.description,
		StartTime:   f.start,
		EndTime:     f.end,
	}
	if f.max > 0 {
		max := f.max
		in.MaxParticipants = &max
	}
	return in
}

// AddCmd implements the add command (coordinator: create a task).
type AddCmd struct {
	flags taskFlags
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "roster add [common flags] [--type <t>] [--desc <d>] [--start <ts>] [--end <ts>] [--max <n>] <name...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	c.flags.register(fs)
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprintln(errOut, "error: task name required")
		return exitcode.UserError
	}

	resp, err := svc.CreateTask(ctx, c.flags.input(name))
	if err != nil {
		if apiErr := service.AsError(err); apiErr != nil && apiErr.Reason == service.ReasonTaskExists {
			fmt.Fprintln(errOut, "error: task already exists")
			return exitcode.UserError
		}
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgTaskCreated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// UpdateCmd implements the update command (coordinator: patch a task).
type UpdateCmd struct {
	flags taskFlags
	name  string
}

func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return nil }
func (c *UpdateCmd) Synopsis() string  { return "Update a task" }
func (c *UpdateCmd) Usage() string {
	return "roster update [common flags] [--name <n>] [--type <t>] [--desc <d>] [--start <ts>] [--end <ts>] [--max <n>] <task-id>"
}
func (c *UpdateCmd) NeedsAuth() bool { return true }

func (c *UpdateCmd) RegisterFlags(fs *flag.FlagSet) {
	c.flags.register(fs)
	fs.StringVar(&c.name, "name", "", "")
}

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	in := c.flags.input(c.name)
	if in == (service.TaskInput{}) {
		fmt.Fprintln(errOut, "error: nothing to update")
		return exitcode.UserError
	}

	resp, err := svc.UpdateTask(ctx, args[0], in)
	if err != nil {
		return writeError(errOut, err)
	}
	if resp.Message != service.MsgTaskUpdated {
		return writeUnexpected(errOut, resp.Message)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
