// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"taskpad/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu       sync.RWMutex
	accounts map[string]string // email -> password
	tasks    []service.Task
	nextID   int

	// Error injection for testing
	LoginErr      error
	SignupErr     error
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error

	// Canned session returned by Login/Signup when set.
	Session *service.Session
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		accounts: make(map[string]string),
		nextID:   1,
	}
}

// AddAccount registers an email/password pair accepted by Login.
func (f *FakeService) AddAccount(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = password
}

// AddTask seeds a task at the end of the collection.
func (f *FakeService) AddTask(t service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, t)
}

// TaskByID returns the stored task and whether it exists.
func (f *FakeService) TaskByID(id string) (service.Task, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (service.Session, error) {
	if f.LoginErr != nil {
		return service.Session{}, f.LoginErr
	}
	if f.Session != nil {
		return *f.Session, nil
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if stored, ok := f.accounts[email]; !ok || stored != password {
		return service.Session{}, &service.AuthenticationError{Status: 401}
	}
	return service.Session{
		User:  service.User{Email: email},
		Token: "tok-" + email,
	}, nil
}

// Signup implements service.Service.
func (f *FakeService) Signup(ctx context.Context, email, password string) (service.Session, error) {
	if f.SignupErr != nil {
		return service.Session{}, f.SignupErr
	}
	if f.Session != nil {
		return *f.Session, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accounts[email]; ok {
		return service.Session{}, &service.RegistrationError{Status: 409}
	}
	f.accounts[email] = password
	return service.Session{
		User:  service.User{Email: email},
		Token: "tok-" + email,
	}, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service. The assigned IDs are t1, t2, ...
// New tasks go to the front, newest first, like the real server.
func (f *FakeService) CreateTask(ctx context.Context, draft service.TaskDraft) (service.Task, error) {
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{
		ID:          fmt.Sprintf("t%d", f.nextID),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
	}
	f.nextID++
	f.tasks = append([]service.Task{task}, f.tasks...)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, &service.TaskWriteError{Op: "update", Status: 404}
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &service.TaskWriteError{Op: "delete", Status: 404}
}
