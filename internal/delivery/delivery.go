// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a running transport surface such as an HTTP server. Serve
// blocks until the server stops; shutdown is handled by lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
