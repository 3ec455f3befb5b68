// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"sync"
)

// State is the lifecycle state of a Task inside a Graph.
//
// Transitions: StatePending → StateRunning → one of {StateFinished,
// StateCancelled, StateFailed}. StateFailed and StateCancelled are both
// terminal and both block dependents from ever entering StateRunning.
type State int

const (
	StatePending State = iota
	StateRunning
	StateFinished
	StateCancelled
	StateFailed
)

// String returns a human-readable state label for logging.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RunFunc is the body of a task. It must honor ctx cancellation:
// long-running bodies (e.g. a stream paginator) are expected to poll
// ctx between remote calls and return promptly once it is done.
type RunFunc func(ctx context.Context) error

// Task is one node of a dependency graph. Tasks are created through
// Graph.Add and must not be shared between graphs.
type Task struct {
	name string
	run  RunFunc
	deps []*Task

	mu    sync.Mutex
	state State
	err   error
}

// Name returns the task's name as given to Graph.Add.
func (t *Task) Name() string { return t.name }

// State returns the task's current lifecycle state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Err returns the failure recorded for the task, or nil.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) setState(s State, err error) {
	t.mu.Lock()
	t.state = s
	if err != nil {
		t.err = err
	}
	t.mu.Unlock()
}

// depsFinished reports whether every declared dependency reached
// StateFinished.
func (t *Task) depsFinished() bool {
	for _, dep := range t.deps {
		if dep.State() != StateFinished {
			return false
		}
	}
	return true
}
