package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/statewatch/statewatch/module"
	"github.com/statewatch/statewatch/state"
)

// NotificationsCollector reports the tracked state and the health of the
// notification fanout to prometheus. Construct it at most once per process;
// metrics register themselves with the default registry.
type NotificationsCollector struct {
	currentState prometheus.Gauge
	stateChanges prometheus.Counter
	deliveries   prometheus.Counter
	failures     prometheus.Counter
	subscribers  prometheus.Gauge
}

var _ module.Metrics = (*NotificationsCollector)(nil)

func NewNotificationsCollector() *NotificationsCollector {
	nc := &NotificationsCollector{
		currentState: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceStatewatch,
			Subsystem: subsystemTracker,
			Name:      "current_state",
			Help:      "the state value most recently applied by the tracker",
		}),
		stateChanges: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceStatewatch,
			Subsystem: subsystemTracker,
			Name:      "state_changes_total",
			Help:      "the number of state overwrites applied by the tracker",
		}),
		deliveries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceStatewatch,
			Subsystem: subsystemNotifications,
			Name:      "deliveries_total",
			Help:      "the number of consumer callbacks that completed without an error",
		}),
		failures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceStatewatch,
			Subsystem: subsystemNotifications,
			Name:      "failures_total",
			Help:      "the number of consumer callbacks that returned an error",
		}),
		subscribers: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespaceStatewatch,
			Subsystem: subsystemNotifications,
			Name:      "subscribers",
			Help:      "the number of currently subscribed consumers",
		}),
	}

	return nc
}

func (nc *NotificationsCollector) StateChanged(current state.Value) {
	nc.currentState.Set(float64(current))
	nc.stateChanges.Inc()
}

func (nc *NotificationsCollector) NotificationDelivered() {
	nc.deliveries.Inc()
}

func (nc *NotificationsCollector) NotificationFailed() {
	nc.failures.Inc()
}

func (nc *NotificationsCollector) SubscriberCount(count uint) {
	nc.subscribers.Set(float64(count))
}
