// Package workers provides abstractions for managing and running
// background workers of the sync engine.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the periodic refresh
// job driving the sync coordinator.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // start background processing
//	}
type Worker interface {
	Run()
}

// Stopper is implemented by workers that support graceful shutdown.
// Stop blocks until the worker's goroutines have drained.
type Stopper interface {
	Stop()
}

// Refresher is the slice of the sync coordinator the refresh job drives.
type Refresher interface {
	RefreshAll(ctx context.Context) error
	RefreshChanges(ctx context.Context) error
	SendPendingStatuses(ctx context.Context) error
}
