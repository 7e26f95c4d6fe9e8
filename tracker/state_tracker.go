// Package tracker implements the state tracker, the single writer of a
// bounded integer state that broadcasts every overwrite to subscribed
// consumers.
package tracker

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/statewatch/statewatch/notifications"
	"github.com/statewatch/statewatch/notifications/pubsub"
	"github.com/statewatch/statewatch/state"
)

// StateTracker owns one state value and the distributor fanning updates out
// to consumers. The mutex is held across mutation and broadcast, so
// consumers observe updates in the exact order they were applied, with no
// interleaving between concurrent writers.
//
// Consumers receive value snapshots and never a reference to the tracker,
// so they cannot mutate the state from inside a callback.
type StateTracker struct {
	dist    *pubsub.StateDistributor
	mu      sync.Mutex
	current state.Value
	updates *atomic.Uint64
}

// NewStateTracker creates a tracker holding `initial`, which must lie within
// [state.MinValue, state.MaxValue].
//
// Expected errors during normal operations:
//   - state.InvalidValueError if `initial` is outside the valid range
func NewStateTracker(dist *pubsub.StateDistributor, initial state.Value) (*StateTracker, error) {
	err := initial.Valid()
	if err != nil {
		return nil, fmt.Errorf("invalid initial state: %w", err)
	}
	st := &StateTracker{
		dist:    dist,
		current: initial,
		updates: atomic.NewUint64(0),
	}
	return st, nil
}

// Subscribe registers a consumer for all future state updates. Subscribing
// an already-subscribed consumer is a no-op.
func (st *StateTracker) Subscribe(consumer notifications.Consumer) {
	st.dist.Subscribe(consumer)
}

// Unsubscribe removes a consumer; it receives no further updates.
// Unsubscribing a consumer that is not subscribed is a no-op.
func (st *StateTracker) Unsubscribe(consumer notifications.Consumer) {
	st.dist.Unsubscribe(consumer)
}

// SetState overwrites the state with `v` and broadcasts the update to all
// subscribed consumers before returning. The overwrite is applied even if
// v equals the current state, so consumers see every call.
//
// A delivery error does not roll the state back: the returned error means
// the state was applied but one or more consumers failed to process it.
//
// Expected errors during normal operations:
//   - state.InvalidValueError if `v` is outside the valid range; the state
//     is left untouched and nothing is broadcast
//   - aggregated consumer errors from the broadcast
func (st *StateTracker) SetState(v state.Value) error {
	err := v.Valid()
	if err != nil {
		return fmt.Errorf("refusing state update: %w", err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	update := state.Update{Previous: st.current, Current: v}
	st.current = v
	st.updates.Inc()

	err = st.dist.OnStateChanged(update)
	if err != nil {
		return fmt.Errorf("state set to %d, but delivery failed: %w", v, err)
	}
	return nil
}

// Randomize overwrites the state with a uniformly random value from
// [state.MinValue, state.MaxValue] and broadcasts the update. It returns
// the value that was applied.
//
// Expected errors during normal operations: same as SetState. A failure of
// the entropy source is an exception; the state is then left untouched.
func (st *StateTracker) Randomize() (state.Value, error) {
	v, err := state.Random()
	if err != nil {
		return 0, fmt.Errorf("could not draw new state: %w", err)
	}
	err = st.SetState(v)
	if err != nil {
		return v, err
	}
	return v, nil
}

// Notify re-announces the current state without changing it. The broadcast
// update carries Previous == Current, which lets late subscribers catch up
// on the state they missed.
//
// Expected errors during normal operations: aggregated consumer errors from
// the broadcast.
func (st *StateTracker) Notify() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	update := state.Update{Previous: st.current, Current: st.current}
	err := st.dist.OnStateChanged(update)
	if err != nil {
		return fmt.Errorf("could not re-announce state %d: %w", st.current, err)
	}
	return nil
}

// State returns the current state value.
func (st *StateTracker) State() state.Value {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.current
}

// Updates returns the number of state overwrites applied so far. Broadcast
// failures do not reduce the count, as failed deliveries still overwrite
// the state.
func (st *StateTracker) Updates() uint64 {
	return st.updates.Load()
}
