// Package delivery holds the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long-running inbound surface started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the surface stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
