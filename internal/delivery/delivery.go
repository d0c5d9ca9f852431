// Package delivery defines the contract every transport implementation
// (HTTP, workers) exposes to the composition root.
package delivery

import "context"

// Delivery is a long-running transport that serves until ctx is done or the
// process shuts it down through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
