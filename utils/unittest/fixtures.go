package unittest

import (
	"math/rand"

	"github.com/statewatch/statewatch/notifications"
	"github.com/statewatch/statewatch/state"
)

// StateFixture returns a random valid state value.
func StateFixture() state.Value {
	span := int(state.MaxValue-state.MinValue) + 1
	return state.MinValue + state.Value(rand.Intn(span))
}

// LowStateFixture returns a random state value strictly below the default
// watermark.
func LowStateFixture() state.Value {
	span := int(notifications.DefaultWatermark - state.MinValue)
	return state.MinValue + state.Value(rand.Intn(span))
}

// HighStateFixture returns a random state value at or above the default
// watermark.
func HighStateFixture() state.Value {
	span := int(state.MaxValue-notifications.DefaultWatermark) + 1
	return notifications.DefaultWatermark + state.Value(rand.Intn(span))
}

// UpdateFixture returns a state update between two random valid values.
func UpdateFixture() state.Update {
	return state.Update{
		Previous: StateFixture(),
		Current:  StateFixture(),
	}
}
