package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"taskpad/internal/config"
	"taskpad/internal/editor"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/store"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: the editor opened on an existing
// task, prepopulated from its current values.
type EditCmd struct {
	title       string
	description string
	priority    string
	due         string

	titleSet bool
	descSet  bool
	dueSet   bool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskpad edit <n> [--title <t>] [--desc <d>] [--priority high|medium|low] [--due <YYYY-MM-DD>]"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	// Commands are registry singletons; start from a clean overlay.
	c.title, c.description, c.due = "", "", ""
	c.titleSet, c.descSet, c.dueSet = false, false, false

	fs.Func("title", "", func(v string) error {
		c.title = v
		c.titleSet = true
		return nil
	})
	fs.Func("desc", "", func(v string) error {
		c.description = v
		c.descSet = true
		return nil
	})
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.Func("due", "", func(v string) error {
		c.due = v
		c.dueSet = true
		return nil
	})
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
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

	// Edit form opens on the task's current values; only flags the user
	// passed overlay them.
	form := editor.NewFormFromTask(task)
	if c.titleSet {
		form.Title = c.title
	}
	if c.descSet {
		form.Description = c.description
	}
	if c.priority != "" {
		form.Priority = c.priority
	}
	if c.dueSet {
		form.DueDate = c.due
	}

	draft, err := form.Draft(time.Now())
	if err != nil {
		return editorFailure(err, errOut)
	}

	if _, err := st.Update(ctx, task.ID, editor.Patch(draft)); err != nil {
		return writeFailure(err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
