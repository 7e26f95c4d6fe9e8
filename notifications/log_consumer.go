package notifications

import (
	"github.com/rs/zerolog"

	"github.com/statewatch/statewatch/state"
)

// LogConsumer is an implementation of the notifications consumer that logs a
// message for each state change.
type LogConsumer struct {
	log zerolog.Logger
}

var _ Consumer = (*LogConsumer)(nil)

func NewLogConsumer(log zerolog.Logger) *LogConsumer {
	lc := &LogConsumer{
		log: log,
	}
	return lc
}

func (lc *LogConsumer) OnStateChanged(update state.Update) error {
	lc.log.Debug().
		Int("previous", int(update.Previous)).
		Int("current", int(update.Current)).
		Msg("state changed")
	return nil
}
