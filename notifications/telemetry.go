package notifications

import (
	"github.com/statewatch/statewatch/module"
	"github.com/statewatch/statewatch/state"
)

// TelemetryConsumer feeds every state change into a metrics backend. It
// rides the same subscription mechanism as any other consumer, so wiring up
// telemetry is just one more Subscribe call.
type TelemetryConsumer struct {
	metrics module.StateMetrics
}

var _ Consumer = (*TelemetryConsumer)(nil)

func NewTelemetryConsumer(metrics module.StateMetrics) *TelemetryConsumer {
	tc := &TelemetryConsumer{
		metrics: metrics,
	}
	return tc
}

func (tc *TelemetryConsumer) OnStateChanged(update state.Update) error {
	tc.metrics.StateChanged(update.Current)
	return nil
}
