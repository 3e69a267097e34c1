// Package session holds the authenticated identity and bearer credential
// for the current user, and persists both to the configuration directory.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"golang.org/x/oauth2"

	"taskpad/internal/config"
	"taskpad/internal/service"
)

// ErrNotLoggedIn is returned when a credential is required but absent.
var ErrNotLoggedIn = errors.New("not logged in")

// Listener is notified after every credential transition. The session
// passed is the new state; a zero session means logged out.
type Listener func(service.Session)

// Store owns the identity/credential pair. Identity and credential are
// always set together or cleared together, in memory and on disk. No other
// component writes the two storage files.
//
// Store implements oauth2.TokenSource so the API client can stamp the
// bearer token onto authenticated requests.
type Store struct {
	cfg *config.Config

	mu        sync.RWMutex
	user      service.User
	token     string
	listeners []Listener
}

// NewStore creates a session store over the given config's storage paths.
// The store starts unauthenticated; call Restore to load a persisted
// session.
func NewStore(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// Restore loads a persisted session from disk. An absent or malformed
// stored record starts the session unauthenticated; Restore never fails
// startup. The pair is all-or-nothing: if either file is unreadable, both
// are treated as absent.
func (s *Store) Restore() {
	userData, err := os.ReadFile(s.cfg.UserPath())
	if err != nil {
		return
	}
	tokenData, err := os.ReadFile(s.cfg.TokenPath())
	if err != nil {
		return
	}

	var user service.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return
	}
	token := string(tokenData)
	if user.Email == "" || token == "" {
		return
	}

	s.set(service.Session{User: user, Token: token})
}

// Login exchanges credentials for a session via the service. On success the
// new identity and credential are set and persisted together. On failure
// the prior state, in memory and on disk, is untouched.
func (s *Store) Login(ctx context.Context, svc service.Service, email, password string) (service.Session, error) {
	sess, err := svc.Login(ctx, email, password)
	if err != nil {
		return service.Session{}, err
	}
	if err := s.persist(sess); err != nil {
		return service.Session{}, err
	}
	s.set(sess)
	return sess, nil
}

// Signup registers a new account via the service. Same contract as Login.
func (s *Store) Signup(ctx context.Context, svc service.Service, email, password string) (service.Session, error) {
	sess, err := svc.Signup(ctx, email, password)
	if err != nil {
		return service.Session{}, err
	}
	if err := s.persist(sess); err != nil {
		return service.Session{}, err
	}
	s.set(sess)
	return sess, nil
}

// Logout clears the identity and credential in memory and removes both
// storage files. It always succeeds and makes no network call.
func (s *Store) Logout() {
	os.Remove(s.cfg.UserPath())
	os.Remove(s.cfg.TokenPath())
	s.set(service.Session{})
}

// Authenticated reports whether a credential is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// User returns the current identity. The zero User means unauthenticated.
func (s *Store) User() service.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token implements oauth2.TokenSource.
func (s *Store) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, ErrNotLoggedIn
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}

// Subscribe registers fn to be called after every credential transition.
// Dependents use this to load state when a credential appears and drop it
// when the credential goes away.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// persist writes both storage files, identity first. Files are written
// with mode 0600.
func (s *Store) persist(sess service.Session) error {
	if err := s.cfg.EnsureDir(); err != nil {
		return err
	}
	userData, err := json.MarshalIndent(sess.User, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.cfg.UserPath(), userData, 0600); err != nil {
		return err
	}
	return os.WriteFile(s.cfg.TokenPath(), []byte(sess.Token), 0600)
}

// set updates both fields together and notifies listeners.
func (s *Store) set(sess service.Session) {
	s.mu.Lock()
	s.user = sess.User
	s.token = sess.Token
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sess)
	}
}
