package notifications

import (
	"github.com/rs/zerolog"

	"github.com/statewatch/statewatch/state"
)

// LowStateConsumer reacts to updates whose new value lies strictly below its
// watermark and ignores all others.
type LowStateConsumer struct {
	log       zerolog.Logger
	watermark state.Value
}

var _ Consumer = (*LowStateConsumer)(nil)

// NewLowStateConsumer creates a consumer reacting to states in the interval
// [state.MinValue, watermark). Pass DefaultWatermark for the standard split.
func NewLowStateConsumer(log zerolog.Logger, watermark state.Value) *LowStateConsumer {
	lc := &LowStateConsumer{
		log:       log.With().Str("consumer", "low_state").Logger(),
		watermark: watermark,
	}
	return lc
}

func (lc *LowStateConsumer) OnStateChanged(update state.Update) error {
	if update.Current >= lc.watermark {
		return nil
	}
	lc.log.Info().
		Int("previous", int(update.Previous)).
		Int("current", int(update.Current)).
		Int("watermark", int(lc.watermark)).
		Msg("reacting to low state")
	return nil
}

// HighStateConsumer reacts to updates whose new value lies at or above its
// watermark and ignores all others. Together with a LowStateConsumer using
// the same watermark it covers every update exactly once.
type HighStateConsumer struct {
	log       zerolog.Logger
	watermark state.Value
}

var _ Consumer = (*HighStateConsumer)(nil)

// NewHighStateConsumer creates a consumer reacting to states in the interval
// [watermark, state.MaxValue]. Pass DefaultWatermark for the standard split.
func NewHighStateConsumer(log zerolog.Logger, watermark state.Value) *HighStateConsumer {
	hc := &HighStateConsumer{
		log:       log.With().Str("consumer", "high_state").Logger(),
		watermark: watermark,
	}
	return hc
}

func (hc *HighStateConsumer) OnStateChanged(update state.Update) error {
	if update.Current < hc.watermark {
		return nil
	}
	hc.log.Info().
		Int("previous", int(update.Previous)).
		Int("current", int(update.Current)).
		Int("watermark", int(hc.watermark)).
		Msg("reacting to high state")
	return nil
}
