// Package state defines the bounded integer value tracked by a state
// tracker and the update payload broadcast to consumers whenever the
// value is overwritten.
package state

import (
	"fmt"

	"github.com/statewatch/statewatch/utils/rand"
)

// Bounds of the valid state range. Values are validated against and drawn
// from the inclusive interval [MinValue, MaxValue].
const (
	MinValue Value = 0
	MaxValue Value = 10
)

// Value is a single tracked state. The zero value is a valid state.
type Value int

// Valid returns nil if the value lies within [MinValue, MaxValue] and an
// InvalidValueError otherwise.
func (v Value) Valid() error {
	if v < MinValue || v > MaxValue {
		return NewInvalidValueErrorf("state value %d is outside the range [%d, %d]", v, MinValue, MaxValue)
	}
	return nil
}

// Random draws a uniformly distributed value from [MinValue, MaxValue].
// Randomness comes from the system entropy source, so results are not
// reproducible; callers that need determinism should pick values themselves.
//
// It returns a generic error if the entropy source fails, which should be
// treated as an irrecoverable exception.
func Random() (Value, error) {
	span := uint64(MaxValue - MinValue + 1)
	draw, err := rand.Uint64n(span)
	if err != nil {
		return 0, fmt.Errorf("could not draw random state value: %w", err)
	}
	return MinValue + Value(draw), nil
}

// Update describes one overwrite of a tracked state. Consumers receive the
// transition as a value snapshot; they never hold a reference back to the
// tracker that produced it.
type Update struct {
	// Previous is the state value that was replaced.
	Previous Value
	// Current is the state value in effect when the update was published.
	// A re-announcement of an unchanged state carries Previous == Current.
	Current Value
}
