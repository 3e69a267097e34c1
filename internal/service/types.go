// Package service defines the backend-agnostic interface for task and
// session operations.
package service

// Priority levels. The server stores priority as one of these strings;
// anything else ranks below low when sorting.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// User is the server-issued identity record.
type User struct {
	Email string `json:"email"`
}

// Session pairs an identity with its bearer credential.
// Both fields are set together or not at all.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Task represents a single task item as the server returns it.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"` // YYYY-MM-DD, empty = none
	Completed   bool   `json:"completed"`
}

// TaskDraft is the payload for creating a task. The server assigns the ID.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// TaskPatch is a partial update. Only set (non-nil) fields are sent.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
