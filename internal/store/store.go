// Package store owns the in-memory task collection for the current
// session and keeps it synchronized with the server through the service.
package store

import (
	"context"
	"sync"

	"taskpad/internal/service"
	"taskpad/internal/session"
)

// Store holds the task collection. The collection is mutated only here,
// only after a completed service call or a credential change. Consumers
// get copies; derived views are recomputed from Tasks on demand, never
// cached elsewhere.
//
// Operations are not serialized against each other: overlapping calls are
// permitted and apply in completion order (last writer wins).
type Store struct {
	svc service.Service

	mu      sync.RWMutex
	tasks   []service.Task
	loading bool
}

// New creates a task store over the given service.
func New(svc service.Service) *Store {
	return &Store{svc: svc}
}

// NewBound creates a task store subscribed to the session store's
// credential transitions: the collection loads when a credential appears
// and clears when it goes away, so the store never holds tasks for a
// session that ended.
func NewBound(svc service.Service, sess *session.Store) *Store {
	s := New(svc)
	sess.Subscribe(func(sn service.Session) {
		if sn.Token == "" {
			s.Clear()
			return
		}
		// Errors here surface on the next explicit Load; a failed
		// automatic load keeps the collection empty, not stale.
		_ = s.Load(context.Background())
	})
	return s
}

// Load fetches the full collection and replaces the in-memory copy with
// the server response. The loading flag is true for the duration and false
// on completion, success or failure. A failed load leaves the prior
// collection unchanged.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	tasks, err := s.svc.ListTasks(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.tasks = tasks
	}
	s.mu.Unlock()
	return err
}

// Reload is Load, re-triggerable on demand.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Create sends the draft to the server and, on success, prepends the
// server-returned task (with its server-assigned ID) to the collection.
// On failure the collection is unchanged.
func (s *Store) Create(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	task, err := s.svc.CreateTask(ctx, draft)
	if err != nil {
		return service.Task{}, err
	}

	s.mu.Lock()
	s.tasks = append([]service.Task{task}, s.tasks...)
	s.mu.Unlock()
	return task, nil
}

// Update sends a partial update and, on success, replaces the matching
// element by ID with the server's full record, preserving collection
// order. An ID no longer present after a successful update is a benign
// no-op, not an error. On failure the collection is unchanged.
func (s *Store) Update(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	task, err := s.svc.UpdateTask(ctx, id, patch)
	if err != nil {
		return service.Task{}, err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = task
			break
		}
	}
	s.mu.Unlock()
	return task, nil
}

// Delete sends a delete request and removes the element only after the
// server confirms. On failure the collection is unchanged.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.svc.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Tasks returns a copy of the current collection in server order.
func (s *Store) Tasks() []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Loading reports whether a load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Clear drops the collection without a network call.
func (s *Store) Clear() {
	s.mu.Lock()
	s.tasks = nil
	s.mu.Unlock()
}
