// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-feed-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted returns a RunFunc that counts invocations and returns err.
func counted(n *atomic.Int32, err error) RunFunc {
	return func(context.Context) error {
		n.Add(1)
		return err
	}
}

func TestGraph_RunsInDependencyOrder(t *testing.T) {
	g := NewGraph(logger.Nop())

	var order []string
	record := func(name string) RunFunc {
		return func(context.Context) error {
			order = append(order, name)
			return nil
		}
	}

	a := g.Add("a", record("a"))
	b := g.Add("b", record("b"), a)
	c := g.Add("c", record("c"), a)
	g.Add("d", record("d"), b, c)
	g.AddCheckpoint("checkpoint", nil)

	require.NoError(t, g.Run(context.Background()))

	require.Len(t, order, 4)
	assert.Equal(t, "a", order[0])
	assert.Equal(t, "d", order[3])
}

func TestGraph_FailureCancelsDependents(t *testing.T) {
	g := NewGraph(logger.Nop())
	boom := errors.New("boom")

	var ran, neverRan, alsoNever atomic.Int32

	ok := g.Add("ok", counted(&ran, nil))
	failing := g.Add("failing", counted(&ran, boom), ok)
	dependent := g.Add("dependent", counted(&neverRan, nil), failing)
	transitive := g.Add("transitive", counted(&alsoNever, nil), dependent)
	g.AddCheckpoint("checkpoint", nil)

	err := g.Run(context.Background())
	require.ErrorIs(t, err, boom)

	// Direct and transitive dependents of the failed task are observed
	// as zero invocations.
	assert.Equal(t, int32(0), neverRan.Load())
	assert.Equal(t, int32(0), alsoNever.Load())
	assert.Equal(t, StateFailed, failing.State())
	assert.Equal(t, StateCancelled, dependent.State())
	assert.Equal(t, StateCancelled, transitive.State())
	assert.Equal(t, StateFinished, ok.State())
}

func TestGraph_CheckpointReportsFailure(t *testing.T) {
	g := NewGraph(logger.Nop())
	boom := errors.New("boom")

	g.Add("failing", func(context.Context) error { return boom })
	var reported error
	var fired atomic.Int32
	cp := g.AddCheckpoint("checkpoint", func(_ context.Context, err error) {
		fired.Add(1)
		reported = err
	})

	err := g.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), fired.Load(), "checkpoint must fire exactly once")
	assert.ErrorIs(t, reported, boom)
	assert.Equal(t, StateFailed, cp.State())
}

func TestGraph_CheckpointReportsSuccess(t *testing.T) {
	g := NewGraph(logger.Nop())

	g.Add("only", func(context.Context) error { return nil })
	var reported = errors.New("sentinel: observer not called")
	cp := g.AddCheckpoint("checkpoint", func(_ context.Context, err error) {
		reported = err
	})

	require.NoError(t, g.Run(context.Background()))
	assert.NoError(t, reported)
	assert.Equal(t, StateFinished, cp.State())
}

func TestGraph_ContextCancellationStopsGraph(t *testing.T) {
	g := NewGraph(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	var after atomic.Int32
	g.Add("cancelling", func(context.Context) error {
		cancel() // the next task must never start
		return nil
	})
	never := g.Add("never", counted(&after, nil))
	g.AddCheckpoint("checkpoint", nil)

	err := g.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), after.Load())
	assert.Equal(t, StateCancelled, never.State())
}

func TestGraph_NoCheckpointIsAnError(t *testing.T) {
	g := NewGraph(logger.Nop())
	g.Add("orphan", func(context.Context) error { return nil })

	err := g.Run(context.Background())
	require.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestGraph_ForeignDependencyIsAnError(t *testing.T) {
	other := NewGraph(logger.Nop())
	foreign := other.Add("foreign", func(context.Context) error { return nil })

	g := NewGraph(logger.Nop())
	var ran atomic.Int32
	g.Add("task", counted(&ran, nil), foreign)
	g.AddCheckpoint("checkpoint", nil)

	err := g.Run(context.Background())
	require.ErrorIs(t, err, ErrForeignDependency)
	assert.Equal(t, int32(0), ran.Load())
}

func TestGraph_IndependentWorkIsNotRolledBack(t *testing.T) {
	g := NewGraph(logger.Nop())
	boom := errors.New("boom")

	var committed atomic.Int32
	early := g.Add("early-commit", counted(&committed, nil))
	g.Add("late-failure", func(context.Context) error { return boom }, early)
	g.AddCheckpoint("checkpoint", nil)

	err := g.Run(context.Background())
	require.ErrorIs(t, err, boom)

	// The earlier task's work stays committed; the graph only reports
	// the failure.
	assert.Equal(t, int32(1), committed.Load())
	assert.Equal(t, StateFinished, early.State())
}
