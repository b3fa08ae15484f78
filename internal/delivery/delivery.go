// Package delivery defines the contract every transport entry point
// (HTTP server, background worker) satisfies so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until its context is
// cancelled or an unrecoverable error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
