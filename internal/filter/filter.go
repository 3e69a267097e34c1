// Package filter derives filtered and sorted views of a task collection.
// Everything here is pure: inputs are never mutated and the same inputs
// always produce the same output, so views are safe to recompute on every
// render.
package filter

import (
	"fmt"
	"sort"

	"taskpad/internal/service"
)

// Mode selects a derived view of the collection.
type Mode string

const (
	// ModeAll is the full collection in identity order.
	ModeAll Mode = "all"

	// ModeActive is the subsequence of incomplete tasks, order preserved.
	ModeActive Mode = "active"

	// ModeCompleted is the subsequence of completed tasks, order preserved.
	ModeCompleted Mode = "completed"

	// ModePriority is the full collection reordered by priority rank,
	// highest first. Ties keep their prior relative order.
	ModePriority Mode = "priority"
)

// ParseMode maps user text to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll, ModeActive, ModeCompleted, ModePriority:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid filter: %s (use all, active, completed or priority)", s)
}

// Apply returns a new slice holding the view of tasks selected by mode.
// The input slice is never modified.
func Apply(tasks []service.Task, mode Mode) []service.Task {
	switch mode {
	case ModeActive:
		return byCompleted(tasks, false)
	case ModeCompleted:
		return byCompleted(tasks, true)
	case ModePriority:
		out := make([]service.Task, len(tasks))
		copy(out, tasks)
		sort.SliceStable(out, func(i, j int) bool {
			return Rank(out[i].Priority) > Rank(out[j].Priority)
		})
		return out
	default:
		out := make([]service.Task, len(tasks))
		copy(out, tasks)
		return out
	}
}

// Rank maps a priority string to its sort rank. Unrecognized priorities
// rank below low.
func Rank(priority string) int {
	switch priority {
	case service.PriorityHigh:
		return 3
	case service.PriorityMedium:
		return 2
	case service.PriorityLow:
		return 1
	}
	return 0
}

func byCompleted(tasks []service.Task, completed bool) []service.Task {
	var out []service.Task
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}
