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
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command.
type SignupCmd struct {
	email    string
	password string
}

// SetCredentials sets the email and password (for testing).
func (c *SignupCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return []string{"register"} }
func (c *SignupCmd) Synopsis() string  { return "Create an account and log in" }
func (c *SignupCmd) Usage() string     { return "taskpad signup [--email <e>] [--password <p>]" }
func (c *SignupCmd) NeedsAuth() bool   { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if sess.Authenticated() {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	email, password, code := collectCredentials(c.email, c.password, errOut)
	if code != exitcode.Success {
		return code
	}

	authed, err := sess.Signup(ctx, svc, email, password)
	if err != nil {
		return authFailure("signup failed", err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", authed.User.Email)
	}
	return exitcode.Success
}
