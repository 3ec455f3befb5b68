// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline implements the dependency-ordered task graph that
// drives a synchronization pass.
//
// A Graph is a DAG of Tasks with a single terminal checkpoint. Tasks are
// executed on one coordinating goroutine in dependency order; the tasks
// themselves perform out-of-line network I/O inside their RunFunc. A
// task runs only after all of its declared dependencies finished
// successfully. If any task fails, every not-yet-started task is
// cancelled and the checkpoint reports the failure to the graph's owner.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
)

var (
	// ErrNoCheckpoint is returned by Run when the graph was built
	// without a checkpoint task.
	ErrNoCheckpoint = errors.New("pipeline graph has no checkpoint")

	// ErrForeignDependency is returned by Run when a task depends on a
	// task that was never added to the same graph.
	ErrForeignDependency = errors.New("pipeline task depends on a task outside the graph")
)

// CheckpointFunc observes the terminal outcome of a graph run. err is
// nil when every task finished successfully, otherwise it is the first
// failure (or the context error when the run was cancelled).
type CheckpointFunc func(ctx context.Context, err error)

// Graph is a builder and executor for one dependency-ordered pass.
// Graphs are single-use: build, Run once, discard.
type Graph struct {
	log        *logger.Logger
	tasks      []*Task
	checkpoint *Task
	observer   CheckpointFunc
}

// NewGraph returns an empty graph logging through log.
func NewGraph(log *logger.Logger) *Graph {
	if log == nil {
		log = logger.Nop()
	}
	return &Graph{log: log}
}

// Add registers a task with the given name, body and dependencies and
// returns it so later tasks can depend on it. Dependencies must already
// belong to the receiver; Run reports ErrForeignDependency otherwise.
// Because every dependency must exist before its dependents, insertion
// order is a valid topological order and the builder cannot form cycles.
func (g *Graph) Add(name string, fn RunFunc, deps ...*Task) *Task {
	t := &Task{name: name, run: fn, deps: deps, state: StatePending}
	g.tasks = append(g.tasks, t)
	return t
}

// AddCheckpoint registers the terminal checkpoint task. The checkpoint
// implicitly depends on every task added before it; observer (optional)
// is invoked with the run's outcome once all other tasks have finished
// or been cancelled.
func (g *Graph) AddCheckpoint(name string, observer CheckpointFunc) *Task {
	t := &Task{name: name, deps: append([]*Task(nil), g.tasks...), state: StatePending}
	g.checkpoint = t
	g.observer = observer
	return t
}

// Run executes the graph to completion and returns the overall outcome.
//
// Tasks run sequentially in insertion order, which Add guarantees to be
// a topological order of the DAG. On the first task failure every
// remaining task is cancelled without running; already-committed work
// from earlier tasks is left untouched. Cancelling ctx has the same
// effect, with ctx.Err() as the outcome. The checkpoint always fires
// exactly once, last.
func (g *Graph) Run(ctx context.Context) error {
	if g.checkpoint == nil {
		return ErrNoCheckpoint
	}
	if err := g.validate(); err != nil {
		return err
	}

	var firstErr error
	for i, t := range g.tasks {
		if err := ctx.Err(); err != nil {
			g.cancelFrom(i)
			if firstErr == nil {
				firstErr = err
			}
			break
		}

		if !t.depsFinished() {
			// A dependency failed or was cancelled; this task never runs.
			t.setState(StateCancelled, nil)
			g.log.Debug().Str("task", t.name).Msg("task cancelled: dependency did not finish")
			continue
		}

		t.setState(StateRunning, nil)
		g.log.Debug().Str("task", t.name).Msg("task started")

		if err := t.run(ctx); err != nil {
			err = fmt.Errorf("task %s: %w", t.name, err)
			t.setState(StateFailed, err)
			g.log.Debug().Str("task", t.name).Err(err).Msg("task failed")
			if firstErr == nil {
				firstErr = err
			}
			g.cancelFrom(i + 1)
			break
		}

		t.setState(StateFinished, nil)
		g.log.Debug().Str("task", t.name).Msg("task finished")
	}

	g.finishCheckpoint(ctx, firstErr)
	return firstErr
}

// validate checks that every declared dependency belongs to the graph.
func (g *Graph) validate() error {
	known := make(map[*Task]struct{}, len(g.tasks)+1)
	for _, t := range g.tasks {
		known[t] = struct{}{}
	}
	for _, t := range g.tasks {
		for _, dep := range t.deps {
			if _, ok := known[dep]; !ok {
				return fmt.Errorf("%w: task %s", ErrForeignDependency, t.name)
			}
		}
	}
	return nil
}

// cancelFrom marks every still-pending task at index ≥ from as cancelled.
func (g *Graph) cancelFrom(from int) {
	for _, t := range g.tasks[from:] {
		if t.State() == StatePending {
			t.setState(StateCancelled, nil)
		}
	}
}

// finishCheckpoint records the checkpoint's terminal state and notifies
// the observer with the overall outcome.
func (g *Graph) finishCheckpoint(ctx context.Context, err error) {
	if err == nil {
		g.checkpoint.setState(StateFinished, nil)
	} else {
		g.checkpoint.setState(StateFailed, err)
	}
	if g.observer != nil {
		g.observer(ctx, err)
	}
}
