// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskpad/internal/service"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [{x| }] {TITLE}" plus "  !{PRIORITY}" for non-medium
// priorities and "  due {DATE}" when a due date is set.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Completed {
		box = "x"
	}

	line := fmt.Sprintf("%4d  [%s] %s", num, box, normalizeTitle(task.Title))
	if task.Priority != "" && task.Priority != service.PriorityMedium {
		line += "  !" + task.Priority
	}
	if task.DueDate != "" {
		line += "  due " + task.DueDate
	}
	fmt.Fprintln(w, line)
}

// FormatSession formats the identity line for login, signup and whoami.
func FormatSession(w io.Writer, user service.User) {
	fmt.Fprintln(w, user.Email)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
