// Package module defines the abstractions that tie the tracker, the
// notification machinery, and the metrics backends together.
package module

import (
	"github.com/statewatch/statewatch/state"
)

// StateMetrics tracks the evolution of a tracked state value. It is driven
// by the telemetry consumer, so metrics collection rides the same
// subscription mechanism as every other consumer.
type StateMetrics interface {
	// StateChanged reports that the tracked state was overwritten and now
	// holds `current`.
	StateChanged(current state.Value)
}

// NotificationsMetrics tracks the fanout of state-change notifications to
// subscribed consumers.
type NotificationsMetrics interface {
	// NotificationDelivered reports one consumer callback that returned
	// without an error.
	NotificationDelivered()

	// NotificationFailed reports one consumer callback that returned an
	// error.
	NotificationFailed()

	// SubscriberCount reports the number of subscribed consumers after a
	// subscription change.
	SubscriberCount(count uint)
}

// Metrics aggregates all metrics interfaces of the module into one backend.
type Metrics interface {
	StateMetrics
	NotificationsMetrics
}
