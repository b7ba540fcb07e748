// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a servable transport (HTTP today). The fx application
// collects all deliveries and starts each of them.
type Delivery interface {
	Serve(ctx context.Context) error
}
