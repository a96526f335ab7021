// Package delivery defines the contract every transport implementation
// satisfies so the application can run them uniformly.
package delivery

import "context"

// Delivery is a long-running transport, such as the HTTP server.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
