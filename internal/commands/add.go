package commands

import (
	"context"
	"errors"
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
	Register(&AddCmd{})
}

// AddCmd implements the add command: the creation editor.
type AddCmd struct {
	description string
	priority    string
	due         string
}

// SetFields sets the editor fields (for testing).
func (c *AddCmd) SetFields(description, priority, due string) {
	c.description = description
	c.priority = priority
	c.due = due
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskpad add [--desc <d>] [--priority high|medium|low] [--due <YYYY-MM-DD>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.due, "due", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	// Creation form starts from defaults; flags fill it in.
	form := editor.NewForm()
	form.Title = strings.Join(args, " ")
	form.Description = c.description
	if c.priority != "" {
		form.Priority = c.priority
	}
	form.DueDate = c.due

	draft, err := form.Draft(time.Now())
	if err != nil {
		return editorFailure(err, errOut)
	}

	st := store.NewBound(svc, sess)
	task, err := st.Create(ctx, draft)
	if err != nil {
		return writeFailure(err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "created %s\n", task.ID)
	}
	return exitcode.Success
}

// editorFailure renders a form validation error. No draft was emitted and
// no store call was made.
func editorFailure(err error, errOut io.Writer) int {
	if errors.Is(err, editor.ErrTitleRequired) {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// writeFailure renders a rejected task write as one static message.
func writeFailure(err error, errOut io.Writer) int {
	var writeErr *service.TaskWriteError
	if errors.As(err, &writeErr) {
		fmt.Fprintf(errOut, "error: %v\n", writeErr)
		return exitcode.BackendError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
