// Package workers provides the background workers of the client process.
// It defines the Worker interface and a Workers aggregate that runs
// several workers for the lifetime of a context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done and releases everything it acquired before
// returning.
type Worker interface {
	Run(ctx context.Context)
}
