package notifications_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/statewatch/statewatch/notifications"
	"github.com/statewatch/statewatch/state"
	"github.com/statewatch/statewatch/utils/unittest"
)

// stateMetrics records telemetry calls for inspection.
type stateMetrics struct {
	calls int
	last  state.Value
}

func (m *stateMetrics) StateChanged(current state.Value) {
	m.calls++
	m.last = current
}

func TestNoopConsumer(t *testing.T) {
	nc := notifications.NewNoopConsumer()
	require.NoError(t, nc.OnStateChanged(unittest.UpdateFixture()))
}

func TestLogConsumer(t *testing.T) {
	buffer := &bytes.Buffer{}
	lc := notifications.NewLogConsumer(zerolog.New(buffer))

	err := lc.OnStateChanged(state.Update{Previous: 3, Current: 9})
	require.NoError(t, err)

	require.Contains(t, buffer.String(), "state changed")
	require.Contains(t, buffer.String(), `"previous":3`)
	require.Contains(t, buffer.String(), `"current":9`)
}

func TestLowStateConsumer(t *testing.T) {
	for v := state.MinValue; v <= state.MaxValue; v++ {
		buffer := &bytes.Buffer{}
		lc := notifications.NewLowStateConsumer(zerolog.New(buffer), notifications.DefaultWatermark)

		err := lc.OnStateChanged(state.Update{Previous: unittest.StateFixture(), Current: v})
		require.NoError(t, err)

		if v < notifications.DefaultWatermark {
			require.Contains(t, buffer.String(), "reacting to low state", "should react to %d", v)
		} else {
			require.Empty(t, buffer.String(), "should ignore %d", v)
		}
	}
}

func TestHighStateConsumer(t *testing.T) {
	for v := state.MinValue; v <= state.MaxValue; v++ {
		buffer := &bytes.Buffer{}
		hc := notifications.NewHighStateConsumer(zerolog.New(buffer), notifications.DefaultWatermark)

		err := hc.OnStateChanged(state.Update{Previous: unittest.StateFixture(), Current: v})
		require.NoError(t, err)

		if v >= notifications.DefaultWatermark {
			require.Contains(t, buffer.String(), "reacting to high state", "should react to %d", v)
		} else {
			require.Empty(t, buffer.String(), "should ignore %d", v)
		}
	}
}

// TestWatermarkPartition checks that for every valid state exactly one of
// the two watermark consumers reacts, for any watermark within the range.
func TestWatermarkPartition(t *testing.T) {
	for w := state.MinValue; w <= state.MaxValue; w++ {
		t.Run(fmt.Sprintf("watermark_%d", w), func(t *testing.T) {
			for v := state.MinValue; v <= state.MaxValue; v++ {
				lowBuffer := &bytes.Buffer{}
				highBuffer := &bytes.Buffer{}
				lc := notifications.NewLowStateConsumer(zerolog.New(lowBuffer), w)
				hc := notifications.NewHighStateConsumer(zerolog.New(highBuffer), w)

				update := state.Update{Previous: unittest.StateFixture(), Current: v}
				require.NoError(t, lc.OnStateChanged(update))
				require.NoError(t, hc.OnStateChanged(update))

				lowReacted := lowBuffer.Len() > 0
				highReacted := highBuffer.Len() > 0
				require.NotEqual(t, lowReacted, highReacted,
					"exactly one consumer should react to %d with watermark %d", v, w)
			}
		})
	}
}

func TestTelemetryConsumer(t *testing.T) {
	metrics := &stateMetrics{}
	tc := notifications.NewTelemetryConsumer(metrics)

	require.NoError(t, tc.OnStateChanged(state.Update{Previous: 0, Current: 4}))
	require.NoError(t, tc.OnStateChanged(state.Update{Previous: 4, Current: 9}))
	require.NoError(t, tc.OnStateChanged(state.Update{Previous: 9, Current: 2}))

	require.Equal(t, 3, metrics.calls)
	require.Equal(t, state.Value(2), metrics.last)
}
