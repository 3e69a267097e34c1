package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taskpad/internal/config"
	"taskpad/internal/service"
	"taskpad/internal/session"
	"taskpad/internal/testutil"
)

func newStore(t *testing.T) (*session.Store, *config.Config) {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir()}
	return session.NewStore(cfg), cfg
}

func TestLogin_SetsAndPersistsBoth(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.Session = &service.Session{
		User:  service.User{Email: "a@b.com"},
		Token: "tok1",
	}

	s, cfg := newStore(t)
	sess, err := s.Login(context.Background(), svc, "a@b.com", "x")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if sess.User.Email != "a@b.com" || sess.Token != "tok1" {
		t.Errorf("unexpected session: %+v", sess)
	}
	if !s.Authenticated() {
		t.Error("expected authenticated store")
	}
	if s.User().Email != "a@b.com" {
		t.Errorf("identity not set: %+v", s.User())
	}

	// Both storage files written together.
	userData, err := os.ReadFile(cfg.UserPath())
	if err != nil {
		t.Fatalf("user file not written: %v", err)
	}
	if string(userData) == "" {
		t.Error("empty user file")
	}
	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		t.Fatalf("token file not written: %v", err)
	}
	if string(tokenData) != "tok1" {
		t.Errorf("token file must hold the raw token, got %q", tokenData)
	}
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	svc := testutil.NewFakeService() // no accounts: every login rejected

	s, cfg := newStore(t)
	if _, err := s.Login(context.Background(), svc, "a@b.com", "wrong"); err == nil {
		t.Fatal("expected login error")
	}

	if s.Authenticated() {
		t.Error("failed login must not authenticate")
	}
	if _, err := os.Stat(cfg.UserPath()); !os.IsNotExist(err) {
		t.Error("failed login must not write the user file")
	}
	if _, err := os.Stat(cfg.TokenPath()); !os.IsNotExist(err) {
		t.Error("failed login must not write the token file")
	}
}

func TestSignup_SameContractAsLogin(t *testing.T) {
	svc := testutil.NewFakeService()

	s, _ := newStore(t)
	sess, err := s.Signup(context.Background(), svc, "new@b.com", "x")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if sess.User.Email != "new@b.com" || !s.Authenticated() {
		t.Errorf("unexpected session: %+v", sess)
	}

	// Duplicate signup is rejected and leaves the session alone.
	s2, _ := newStore(t)
	if _, err := s2.Signup(context.Background(), svc, "new@b.com", "x"); err == nil {
		t.Fatal("expected duplicate signup rejection")
	}
	if s2.Authenticated() {
		t.Error("failed signup must not authenticate")
	}
}

func TestLogout_ClearsMemoryAndDisk(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("a@b.com", "x")

	s, cfg := newStore(t)
	if _, err := s.Login(context.Background(), svc, "a@b.com", "x"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	s.Logout()

	if s.Authenticated() {
		t.Error("expected unauthenticated store after logout")
	}
	if s.User() != (service.User{}) {
		t.Error("identity must be absent after logout")
	}
	if _, err := os.Stat(cfg.UserPath()); !os.IsNotExist(err) {
		t.Error("user file must be removed on logout")
	}
	if _, err := os.Stat(cfg.TokenPath()); !os.IsNotExist(err) {
		t.Error("token file must be removed on logout")
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("a@b.com", "x")

	s, cfg := newStore(t)
	if _, err := s.Login(context.Background(), svc, "a@b.com", "x"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// New process over the same config dir.
	restored := session.NewStore(cfg)
	restored.Restore()

	if !restored.Authenticated() {
		t.Fatal("expected restored session")
	}
	if restored.User().Email != "a@b.com" {
		t.Errorf("identity not restored: %+v", restored.User())
	}
}

func TestRestore_AbsentOrMalformedStartsUnauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, cfg *config.Config)
	}{
		{"nothing stored", func(t *testing.T, cfg *config.Config) {}},
		{"malformed user file", func(t *testing.T, cfg *config.Config) {
			writeFiles(t, cfg, "{not json", "tok1")
		}},
		{"user file without token file", func(t *testing.T, cfg *config.Config) {
			if err := os.WriteFile(cfg.UserPath(), []byte(`{"email":"a@b.com"}`), 0600); err != nil {
				t.Fatal(err)
			}
		}},
		{"empty token", func(t *testing.T, cfg *config.Config) {
			writeFiles(t, cfg, `{"email":"a@b.com"}`, "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, cfg := newStore(t)
			tt.setup(t, cfg)

			s.Restore()

			if s.Authenticated() {
				t.Error("expected unauthenticated start")
			}
			if s.User() != (service.User{}) {
				t.Error("expected absent identity")
			}
		})
	}
}

func TestToken_RequiresCredential(t *testing.T) {
	s, _ := newStore(t)

	if _, err := s.Token(); err == nil {
		t.Error("expected error from Token when unauthenticated")
	}

	svc := testutil.NewFakeService()
	svc.AddAccount("a@b.com", "x")
	if _, err := s.Login(context.Background(), svc, "a@b.com", "x"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	tok, err := s.Token()
	if err != nil {
		t.Fatalf("token failed: %v", err)
	}
	if tok.AccessToken != "tok-a@b.com" || tok.TokenType != "Bearer" {
		t.Errorf("unexpected token: %+v", tok)
	}
}

func TestSubscribe_NotifiedOnTransitions(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddAccount("a@b.com", "x")

	s, _ := newStore(t)
	var transitions []string
	s.Subscribe(func(sess service.Session) {
		transitions = append(transitions, sess.Token)
	})

	if _, err := s.Login(context.Background(), svc, "a@b.com", "x"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	s.Logout()

	if len(transitions) != 2 || transitions[0] == "" || transitions[1] != "" {
		t.Errorf("unexpected transitions: %v", transitions)
	}
}

func writeFiles(t *testing.T, cfg *config.Config, user, token string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(cfg.UserPath()), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.UserPath(), []byte(user), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte(token), 0600); err != nil {
		t.Fatal(err)
	}
}
