package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/session"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
}

// SetCredentials sets the email and password (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email = email
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Log in to the task server" }
func (c *LoginCmd) Usage() string     { return "taskpad login [--email <e>] [--password <p>]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	// Already logged in is a success no-op.
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

	authed, err := sess.Login(ctx, svc, email, password)
	if err != nil {
		return authFailure("login failed", err, errOut)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", authed.User.Email)
	}
	return exitcode.Success
}

// collectCredentials fills missing email/password from interactive
// prompts. Empty values after prompting are user errors.
func collectCredentials(email, password string, errOut io.Writer) (string, string, int) {
	var err error
	if email == "" {
		email, err = promptLine(os.Stdin, errOut, "email")
		if err != nil || email == "" {
			fmt.Fprintln(errOut, "error: email required")
			return "", "", exitcode.UserError
		}
	}
	if password == "" {
		password, err = promptPassword(os.Stdin, errOut)
		if err != nil || password == "" {
			fmt.Fprintln(errOut, "error: password required")
			return "", "", exitcode.UserError
		}
	}
	return email, password, exitcode.Success
}

// authFailure renders one static message for a rejected or failed auth
// call and picks the exit code by error kind.
func authFailure(label string, err error, errOut io.Writer) int {
	var authErr *service.AuthenticationError
	var regErr *service.RegistrationError
	if errors.As(err, &authErr) || errors.As(err, &regErr) {
		fmt.Fprintf(errOut, "error: %s\n", label)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
