// Package task provides generation-based cooperative cancellation for
// background completion work.
//
// A Controller hands out Handles stamped with its current generation.
// Restarting the controller bumps the generation, which instantly makes
// every previously issued handle report canceled. Background work never
// stops mid-flight; its result is discarded at the single point it is
// applied, by checking the handle it was cloned with.
package task

import "sync/atomic"

// Controller issues cancellation handles. The zero value is ready to use.
type Controller struct {
	generation atomic.Uint64
}

// NewController creates a controller.
func NewController() *Controller {
	return &Controller{}
}

// Restart supersedes all outstanding handles and returns a fresh one
// bound to the new generation.
func (c *Controller) Restart() Handle {
	gen := c.generation.Add(1)
	return Handle{controller: c, generation: gen}
}

// Cancel supersedes all outstanding handles without issuing a new one.
func (c *Controller) Cancel() {
	c.generation.Add(1)
}

// Handle is a cancellation token cloned into background work. Handles
// are value types and safe to copy across goroutines. The zero Handle
// is permanently canceled.
type Handle struct {
	controller *Controller
	generation uint64
}

// IsCanceled reports whether the handle's generation has been
// superseded. This is the single source of truth for discarding stale
// results, independent of message-arrival order.
func (h Handle) IsCanceled() bool {
	return h.controller == nil || h.controller.generation.Load() != h.generation
}
