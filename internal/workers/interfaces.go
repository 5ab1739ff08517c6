// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution; Stop shuts it down and blocks until it
// has fully exited. Stop must be safe to call when the worker is not
// running.
//
// Implementations are expected to spawn goroutines internally and return
// from Run promptly.
type Worker interface {
	Run()
	Stop()
}
