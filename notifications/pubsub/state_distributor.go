// Package pubsub implements a distributor for state-change notifications.
// The distributor owns the subscriber list; trackers publish through it and
// never see individual consumers.
package pubsub

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/statewatch/statewatch/module"
	"github.com/statewatch/statewatch/notifications"
	"github.com/statewatch/statewatch/state"
)

// StateDistributor ingests state updates and distributes them to subscribed
// consumers, synchronously and in subscription order. It implements the
// consumer interface itself, so distributors can be chained.
type StateDistributor struct {
	log         zerolog.Logger
	metrics     module.NotificationsMetrics
	subscribers []notifications.Consumer
	lock        sync.RWMutex
}

var _ notifications.Consumer = (*StateDistributor)(nil)

func NewStateDistributor(log zerolog.Logger, metrics module.NotificationsMetrics) *StateDistributor {
	sd := &StateDistributor{
		log:         log.With().Str("component", "state_distributor").Logger(),
		metrics:     metrics,
		subscribers: make([]notifications.Consumer, 0),
	}
	return sd
}

// Subscribe adds a consumer to the end of the subscriber list. Consumers are
// compared by interface identity; subscribing an already-subscribed consumer
// changes nothing and leaves a warning in the log.
func (sd *StateDistributor) Subscribe(consumer notifications.Consumer) {
	sd.lock.Lock()
	defer sd.lock.Unlock()

	if slices.Contains(sd.subscribers, consumer) {
		sd.log.Warn().Type("consumer", consumer).Msg("consumer already subscribed, ignoring")
		return
	}
	sd.subscribers = append(sd.subscribers, consumer)
	sd.metrics.SubscriberCount(uint(len(sd.subscribers)))
	sd.log.Debug().Type("consumer", consumer).Int("subscribers", len(sd.subscribers)).Msg("consumer subscribed")
}

// Unsubscribe removes a consumer from the subscriber list, preserving the
// order of the remaining consumers. Removing a consumer that is not
// subscribed changes nothing and leaves a warning in the log.
func (sd *StateDistributor) Unsubscribe(consumer notifications.Consumer) {
	sd.lock.Lock()
	defer sd.lock.Unlock()

	i := slices.Index(sd.subscribers, consumer)
	if i < 0 {
		sd.log.Warn().Type("consumer", consumer).Msg("consumer not subscribed, ignoring")
		return
	}
	sd.subscribers = append(sd.subscribers[:i], sd.subscribers[i+1:]...)
	sd.metrics.SubscriberCount(uint(len(sd.subscribers)))
	sd.log.Debug().Type("consumer", consumer).Int("subscribers", len(sd.subscribers)).Msg("consumer unsubscribed")
}

// OnStateChanged forwards the update to every subscribed consumer, in
// subscription order. Delivery is best effort: a failing consumer does not
// stop the fanout. Errors from all failing consumers are aggregated into the
// returned error.
//
// The subscriber list is read-locked for the duration of the fanout, so
// consumers must not subscribe or unsubscribe from within their callback.
func (sd *StateDistributor) OnStateChanged(update state.Update) error {
	sd.lock.RLock()
	defer sd.lock.RUnlock()

	sd.log.Debug().
		Int("previous", int(update.Previous)).
		Int("current", int(update.Current)).
		Int("subscribers", len(sd.subscribers)).
		Msg("distributing state change")

	var result *multierror.Error
	for _, subscriber := range sd.subscribers {
		err := subscriber.OnStateChanged(update)
		if err != nil {
			sd.metrics.NotificationFailed()
			result = multierror.Append(result, fmt.Errorf("consumer %T failed: %w", subscriber, err))
			continue
		}
		sd.metrics.NotificationDelivered()
	}
	return result.ErrorOrNil()
}

// Size returns the number of currently subscribed consumers.
func (sd *StateDistributor) Size() int {
	sd.lock.RLock()
	defer sd.lock.RUnlock()
	return len(sd.subscribers)
}
