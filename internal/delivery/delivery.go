// Package delivery defines the entry points through which the outside
// world reaches the application.
package delivery

import "context"

// Delivery is a transport server that can be started by the application
// runtime. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
