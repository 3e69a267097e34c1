package service

import "fmt"

// AuthenticationError indicates the server rejected a login.
type AuthenticationError struct {
	Status int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login rejected (status %d)", e.Status)
}

// RegistrationError indicates the server rejected a signup.
type RegistrationError struct {
	Status int
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("signup rejected (status %d)", e.Status)
}

// TaskWriteError indicates the server rejected a task create, update or
// delete. Any non-2xx status is treated uniformly; Status is carried for
// the message only.
type TaskWriteError struct {
	Op     string // "create", "update" or "delete"
	Status int
}

func (e *TaskWriteError) Error() string {
	return fmt.Sprintf("task %s rejected (status %d)", e.Op, e.Status)
}

// NetworkError indicates the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
