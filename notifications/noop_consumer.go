package notifications

import (
	"github.com/statewatch/statewatch/state"
)

// NoopConsumer is an implementation of the notifications consumer that
// doesn't do anything. It is useful in tests and as an embedding base for
// consumers that only want to override parts of the interface.
//
// NoopConsumer is zero-size, so distinct instances may share one address
// and compare equal as interfaces; a distributor deduplicating subscribers
// by identity can then treat them as the same consumer. Embed NoopConsumer
// in a struct with state when distinct subscriptions matter.
type NoopConsumer struct{}

var _ Consumer = (*NoopConsumer)(nil)

func NewNoopConsumer() *NoopConsumer {
	nc := &NoopConsumer{}
	return nc
}

func (*NoopConsumer) OnStateChanged(state.Update) error { return nil }
