// Package delivery defines the contract every server-like component of the
// application satisfies. Deliveries are collected by fx into one group and
// started together from main.
package delivery

import "context"

// Delivery is a long-running component: an HTTP server, the worker push
// server, the retention sweeper. Serve blocks until the component stops or
// fails; shutdown happens through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
