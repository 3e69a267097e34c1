package cli_test

import (
	"bytes"
	"context"
	"testing"

	"taskpad/internal/cli"
	"taskpad/internal/commands"
	"taskpad/internal/config"
	"taskpad/internal/exitcode"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		return svc, nil
	}
}

func dispatch(t *testing.T, svc *testutil.FakeService, args []string) (string, string, int) {
	t.Helper()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := dispatch(t, testutil.NewFakeService(), []string{"unknowncmd"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := dispatch(t, testutil.NewFakeService(), []string{"--quiet"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := dispatch(t, testutil.NewFakeService(), []string{"list", "--bogus"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unknown flag: -bogus\n" {
		t.Errorf("unexpected message %q", stderr)
	}
}

func TestDispatcher_HelpNeedsNoAuth(t *testing.T) {
	stdout, stderr, code := dispatch(t, testutil.NewFakeService(), []string{"help", "--config", t.TempDir()})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if stdout == "" {
		t.Error("expected help output")
	}
}

func TestDispatcher_UnauthenticatedRedirectsToLogin(t *testing.T) {
	// The bare invocation resolves the default config dir; point it at an
	// empty one.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Commands over task data refuse before any network call when no
	// session is stored.
	for _, args := range [][]string{
		{"list", "--config", t.TempDir()},
		nil, // bare invocation dispatches to list
		{"add", "--config", t.TempDir(), "Buy", "milk"},
		{"done", "--config", t.TempDir(), "1"},
		{"rm", "--config", t.TempDir(), "1"},
		{"whoami", "--config", t.TempDir()},
	} {
		_, stderr, code := dispatch(t, testutil.NewFakeService(), args)

		if code != exitcode.AuthError {
			t.Errorf("args %v: expected exit code %d, got %d", args, exitcode.AuthError, code)
		}
		expected := "error: not logged in (run: taskpad login)\n"
		if stderr != expected {
			t.Errorf("args %v: expected %q, got %q", args, expected, stderr)
		}
	}
}

func TestDispatcher_LoginThenListRoundTrip(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("a@b.com", "x")
	svc.AddTask(service.Task{ID: "t1", Title: "Buy milk"})

	dir := t.TempDir()

	stdout, stderr, code := dispatch(t, svc, []string{"login", "--config", dir, "--email", "a@b.com", "--password", "x"})
	if code != exitcode.Success {
		t.Fatalf("login failed: code %d, stderr %q", code, stderr)
	}
	if stdout != "logged in as a@b.com\n" {
		t.Errorf("unexpected login output %q", stdout)
	}

	// Session restored from disk on the next invocation.
	stdout, stderr, code = dispatch(t, svc, []string{"list", "--config", dir})
	if code != exitcode.Success {
		t.Fatalf("list failed: code %d, stderr %q", code, stderr)
	}
	if stdout != "   1  [ ] Buy milk\n" {
		t.Errorf("unexpected list output %q", stdout)
	}

	_, _, code = dispatch(t, svc, []string{"logout", "--config", dir})
	if code != exitcode.Success {
		t.Fatalf("logout failed: code %d", code)
	}

	_, _, code = dispatch(t, svc, []string{"list", "--config", dir})
	if code != exitcode.AuthError {
		t.Errorf("expected auth error after logout, got %d", code)
	}
}
