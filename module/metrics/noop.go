package metrics

import (
	"github.com/statewatch/statewatch/module"
	"github.com/statewatch/statewatch/state"
)

// NoopCollector is a metrics backend that discards everything. It stands in
// for the prometheus collector in tests and in deployments that do not
// expose metrics.
type NoopCollector struct{}

var _ module.Metrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) StateChanged(current state.Value) {}
func (nc *NoopCollector) NotificationDelivered()           {}
func (nc *NoopCollector) NotificationFailed()              {}
func (nc *NoopCollector) SubscriberCount(count uint)       {}
