// Package workers manages the background jobs that live as long as the
// client process. It defines the Worker interface and a Workers aggregate
// that starts and stops them together.
package workers

import "context"

// Worker is a background job started with the application.
//
// Start must not block: implementations spawn their own goroutines and
// stop them when ctx is cancelled or Stop is called. Stop blocks until the
// goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
