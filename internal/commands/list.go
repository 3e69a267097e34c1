package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/filter"
	"taskpad/internal/output"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Running taskpad with no arguments
// dispatches here with the default filter.
type ListCmd struct {
	filterName string
}

// SetFilter sets the filter mode (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filterName = name
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskpad list [--filter all|active|completed|priority]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filterName, "filter", "all", "")
	fs.StringVar(&c.filterName, "f", "all", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	mode, err := filter.ParseMode(c.filterName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	st := store.NewBound(svc, sess)
	if err := st.Load(ctx); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	// The view is derived on demand; numbering follows the collection's
	// server order so references stay stable across filters.
	tasks := st.Tasks()
	position := make(map[string]int, len(tasks))
	for i, t := range tasks {
		position[t.ID] = i + 1
	}

	view := filter.Apply(tasks, mode)
	if len(view) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for _, t := range view {
		output.FormatTask(out, position[t.ID], t)
	}
	return exitcode.Success
}
