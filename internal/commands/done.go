package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/store"
)

func init() {
	Register(&DoneCmd{})
	Register(&ReopenCmd{})
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskpad done <n>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	return setCompleted(ctx, cfg, sess, svc, args, true, out, errOut)
}

// ReopenCmd marks a completed task active again.
type ReopenCmd struct{}

func (c *ReopenCmd) Name() string      { return "reopen" }
func (c *ReopenCmd) Aliases() []string { return []string{"undone"} }
func (c *ReopenCmd) Synopsis() string  { return "Mark a completed task active" }
func (c *ReopenCmd) Usage() string     { return "taskpad reopen <n>" }
func (c *ReopenCmd) NeedsAuth() bool   { return true }

func (c *ReopenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReopenCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	return setCompleted(ctx, cfg, sess, svc, args, false, out, errOut)
}

// setCompleted is the shared implementation for done and reopen: a partial
// update touching only the completed flag.
func setCompleted(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, completed bool, out, errOut io.Writer) int {
	num, err := ParseRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	st := store.NewBound(svc, sess)
	task, err := resolveTask(ctx, st, num)
	if err != nil {
		if strings.Contains(err.Error(), "out of range") {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	patch := service.TaskPatch{Completed: &completed}
	if _, err := st.Update(ctx, task.ID, patch); err != nil {
		return writeFailure(err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
