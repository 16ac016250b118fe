package network

import "context"

// Network is the interface of all kinds of serving surface.
type Network interface {
	Serve(ctx context.Context) error
}
