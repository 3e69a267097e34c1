package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"taskpad/internal/service"
	"taskpad/internal/store"
)

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// ParseRef parses a 1-based task number from args. The number refers to
// the position printed by the list command (server order, unfiltered).
func ParseRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if !isAllDigits(args[0]) {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return num, nil
}

// resolveTask loads the collection and returns the task at the given
// 1-based position.
func resolveTask(ctx context.Context, st *store.Store, num int) (service.Task, error) {
	if err := st.Load(ctx); err != nil {
		return service.Task{}, err
	}
	tasks := st.Tasks()
	if num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
