// Package workers provides abstractions for managing and running
// background workers in the console.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
// Stop blocks until everything started by Run has exited.
//
// Example implementation:
//
//	type MyWorker struct{ job service.ClientProfileJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, time.Minute) }
//	func (w *MyWorker) Stop()                   { w.job.Stop() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
