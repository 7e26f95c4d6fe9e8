// Package notifications defines the consumer interface for state-change
// notifications and a set of ready-made consumer implementations.
package notifications

import (
	"github.com/statewatch/statewatch/state"
)

// DefaultWatermark is the boundary between low and high states: values
// strictly below it count as low, values at or above it count as high. The
// two watermark consumers partition the valid state range with this
// boundary, so every update triggers exactly one of them.
const DefaultWatermark state.Value = 7

// Consumer consumes notifications about state changes published by a
// tracker. Callbacks run synchronously on the publishing goroutine, in
// subscription order, while the distributor holds its lock. Implementations
// must therefore return quickly and must not subscribe or unsubscribe from
// within the callback.
//
// Implementations must be concurrency safe; a consumer subscribed to
// multiple trackers can be called from multiple goroutines at once.
type Consumer interface {
	// OnStateChanged is called whenever the tracked state is overwritten.
	// The update carries the replaced value and the freshly applied one,
	// which are equal for re-announcements.
	//
	// An error returned here is collected by the distributor and reported
	// to the publisher. It does not stop the remaining consumers from
	// being notified.
	OnStateChanged(update state.Update) error
}
