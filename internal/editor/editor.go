// Package editor implements the task editor form: it collects title,
// description, priority and due date for create or edit and emits a
// validated draft. The editor never calls the store; the command that
// opened it decides whether the draft becomes a create or an update.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskpad/internal/service"
)

// DateLayout is the wire format for due dates.
const DateLayout = "2006-01-02"

// ErrTitleRequired means save is a no-op: no draft is emitted.
var ErrTitleRequired = errors.New("title required")

// ErrDueDatePast rejects due dates before the current calendar day.
// This is an editor-level rule only; the store does not enforce it.
var ErrDueDatePast = errors.New("due date is in the past")

// Form holds the editable fields of a task.
type Form struct {
	Title       string
	Description string
	Priority    string
	DueDate     string // YYYY-MM-DD, empty = none
}

// NewForm returns a creation form with default field state: medium
// priority, everything else empty.
func NewForm() *Form {
	return &Form{Priority: service.PriorityMedium}
}

// NewFormFromTask returns an edit form prepopulated from the given task.
func NewFormFromTask(t service.Task) *Form {
	return &Form{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
	}
}

// Draft validates the form against today's calendar date and emits the
// draft record. No draft is emitted on validation failure.
func (f *Form) Draft(today time.Time) (service.TaskDraft, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return service.TaskDraft{}, ErrTitleRequired
	}

	switch f.Priority {
	case service.PriorityHigh, service.PriorityMedium, service.PriorityLow:
	case "":
		f.Priority = service.PriorityMedium
	default:
		return service.TaskDraft{}, fmt.Errorf("invalid priority: %s (use high, medium or low)", f.Priority)
	}

	if f.DueDate != "" {
		due, err := time.Parse(DateLayout, f.DueDate)
		if err != nil {
			return service.TaskDraft{}, fmt.Errorf("invalid due date: %s (use YYYY-MM-DD)", f.DueDate)
		}
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if due.Before(day) {
			return service.TaskDraft{}, ErrDueDatePast
		}
	}

	return service.TaskDraft{
		Title:       title,
		Description: f.Description,
		Priority:    f.Priority,
		DueDate:     f.DueDate,
	}, nil
}

// Patch converts a validated draft into a full-field partial update, for
// the edit case where the command chose update over create.
func Patch(d service.TaskDraft) service.TaskPatch {
	return service.TaskPatch{
		Title:       &d.Title,
		Description: &d.Description,
		Priority:    &d.Priority,
		DueDate:     &d.DueDate,
	}
}
