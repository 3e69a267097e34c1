package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskpad help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskpad                                            List all tasks
  taskpad list [common flags] [--filter all|active|completed|priority]
  taskpad add [common flags] [--desc <d>] [--priority <p>] [--due <YYYY-MM-DD>] <title...>
  taskpad edit [common flags] <n> [--title <t>] [--desc <d>] [--priority <p>] [--due <YYYY-MM-DD>]
  taskpad done <n>
  taskpad reopen <n>
  taskpad rm <n>
  taskpad login [common flags] [--email <e>] [--password <p>]
  taskpad signup [common flags] [--email <e>] [--password <p>]
  taskpad logout [common flags]
  taskpad whoami
  taskpad help
  taskpad version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TASKPAD_API_URL  Base URL of the task server (default http://localhost:8080)
`
