package state_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statewatch/statewatch/state"
)

func TestValueValid(t *testing.T) {
	cases := []struct {
		value state.Value
		valid bool
	}{
		{value: state.MinValue - 1, valid: false},
		{value: state.MinValue, valid: true},
		{value: 5, valid: true},
		{value: state.MaxValue, valid: true},
		{value: state.MaxValue + 1, valid: false},
		{value: -100, valid: false},
		{value: 100, valid: false},
	}

	for _, c := range cases {
		err := c.value.Valid()
		if c.valid {
			require.NoError(t, err, "value %d should be valid", c.value)
			continue
		}
		require.Error(t, err, "value %d should be invalid", c.value)
		require.True(t, state.IsInvalidValueError(err))
	}
}

func TestIsInvalidValueError(t *testing.T) {
	err := state.NewInvalidValueErrorf("state value %d is out of range", 42)
	require.True(t, state.IsInvalidValueError(err))

	// the check must see through wrapping
	wrapped := fmt.Errorf("could not apply update: %w", err)
	require.True(t, state.IsInvalidValueError(wrapped))

	require.False(t, state.IsInvalidValueError(errors.New("some other error")))
	require.False(t, state.IsInvalidValueError(nil))
}

func TestRandomWithinBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		v, err := state.Random()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, state.MinValue)
		require.LessOrEqual(t, v, state.MaxValue)
	}
}
