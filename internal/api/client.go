// Package api implements the service.Service interface over the task
// server's HTTP/JSON API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"taskpad/internal/config"
	"taskpad/internal/service"
)

// APITimeout is the timeout for API calls.
const APITimeout = 5 * time.Second

// Client implements service.Service against an HTTP/JSON server.
// Authenticated calls go through an oauth2 client that stamps the
// bearer token from the token source onto every request.
type Client struct {
	base   string
	anon   *http.Client
	authed *http.Client
	debug  bool
}

// New creates a client for the configured base URL. tokens supplies the
// bearer credential for /tasks calls; /login and /signup are sent without
// auth.
func New(ctx context.Context, cfg *config.Config, tokens oauth2.TokenSource) (*Client, error) {
	base := strings.TrimRight(cfg.APIBaseURL, "/")
	if _, err := url.Parse(base); err != nil || base == "" {
		return nil, fmt.Errorf("invalid api base url: %q", cfg.APIBaseURL)
	}

	return &Client{
		base:   base,
		anon:   &http.Client{},
		authed: oauth2.NewClient(ctx, tokens),
		debug:  cfg.Debug,
	}, nil
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (service.Session, error) {
	var sess service.Session
	status, err := c.do(ctx, c.anon, http.MethodPost, "/login", credentials{email, password}, &sess)
	if err != nil {
		return service.Session{}, &service.NetworkError{Op: "login", Err: err}
	}
	if !is2xx(status) {
		return service.Session{}, &service.AuthenticationError{Status: status}
	}
	return sess, nil
}

// Signup implements service.Service.
func (c *Client) Signup(ctx context.Context, email, password string) (service.Session, error) {
	var sess service.Session
	status, err := c.do(ctx, c.anon, http.MethodPost, "/signup", credentials{email, password}, &sess)
	if err != nil {
		return service.Session{}, &service.NetworkError{Op: "signup", Err: err}
	}
	if !is2xx(status) {
		return service.Session{}, &service.RegistrationError{Status: status}
	}
	return sess, nil
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var body struct {
		Tasks []service.Task `json:"tasks"`
	}
	status, err := c.do(ctx, c.authed, http.MethodGet, "/tasks", nil, &body)
	if err != nil {
		return nil, &service.NetworkError{Op: "list tasks", Err: err}
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("list tasks rejected (status %d)", status)
	}
	return body.Tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	var body struct {
		Task service.Task `json:"task"`
	}
	status, err := c.do(ctx, c.authed, http.MethodPost, "/tasks", draft, &body)
	if err != nil {
		return service.Task{}, &service.NetworkError{Op: "create task", Err: err}
	}
	if !is2xx(status) {
		return service.Task{}, &service.TaskWriteError{Op: "create", Status: status}
	}
	return body.Task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	var body struct {
		Task service.Task `json:"task"`
	}
	path := "/tasks/" + url.PathEscape(id)
	status, err := c.do(ctx, c.authed, http.MethodPatch, path, patch, &body)
	if err != nil {
		return service.Task{}, &service.NetworkError{Op: "update task", Err: err}
	}
	if !is2xx(status) {
		return service.Task{}, &service.TaskWriteError{Op: "update", Status: status}
	}
	return body.Task, nil
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	path := "/tasks/" + url.PathEscape(id)
	status, err := c.do(ctx, c.authed, http.MethodDelete, path, nil, nil)
	if err != nil {
		return &service.NetworkError{Op: "delete task", Err: err}
	}
	if !is2xx(status) {
		return &service.TaskWriteError{Op: "delete", Status: status}
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// do sends one JSON request and decodes a JSON response into out (when out
// is non-nil and the status is 2xx). Returns the HTTP status, or an error
// when no response was received at all.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, in, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return 0, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if c.debug {
		fmt.Fprintf(os.Stderr, "debug: %s %s -> %d\n", method, path, resp.StatusCode)
	}

	if out != nil && is2xx(resp.StatusCode) {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// is2xx reports whether status is a success status. Any non-2xx status is
// treated uniformly as failure; there is no per-status branching.
func is2xx(status int) bool {
	return status >= 200 && status < 300
}
