package metrics

// Prometheus metric namespaces
const (
	namespaceStatewatch = "statewatch"
)

// Prometheus metric subsystems under the statewatch namespace
const (
	subsystemTracker       = "tracker"
	subsystemNotifications = "notifications"
)
