package service

import "context"

// Service defines the interface for task API operations.
// All HTTP calls go through this interface.
// Commands and stores never build requests directly.
type Service interface {
	// Login exchanges credentials for a session.
	// Returns *AuthenticationError on a rejected login.
	Login(ctx context.Context, email, password string) (Session, error)

	// Signup registers a new account and returns its session.
	// Returns *RegistrationError on a rejected signup.
	Signup(ctx context.Context, email, password string) (Session, error)

	// ListTasks returns the full task collection for the current
	// credential, in server order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the server record,
	// including the server-assigned ID.
	CreateTask(ctx context.Context, draft TaskDraft) (Task, error)

	// UpdateTask applies a partial update and returns the full
	// authoritative record.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task by ID.
	DeleteTask(ctx context.Context, id string) error
}
