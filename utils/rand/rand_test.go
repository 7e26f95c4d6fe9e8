package rand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statewatch/statewatch/utils/rand"
)

func TestUint64nRejectsZero(t *testing.T) {
	_, err := rand.Uint64n(0)
	require.Error(t, err)
}

func TestUint64nUpperBound(t *testing.T) {
	// n == 1 admits only one outcome
	for i := 0; i < 10; i++ {
		v, err := rand.Uint64n(1)
		require.NoError(t, err)
		require.Equal(t, uint64(0), v)
	}

	// all draws stay strictly below n, including for n that is not a
	// power of two
	const n = uint64(11)
	for i := 0; i < 500; i++ {
		v, err := rand.Uint64n(n)
		require.NoError(t, err)
		require.Less(t, v, n)
	}
}

func TestUint64nCoversRange(t *testing.T) {
	// with 500 draws over 11 outcomes, a missing outcome is vanishingly
	// unlikely (chance below 1e-20)
	const n = uint64(11)
	seen := make(map[uint64]bool, n)
	for i := 0; i < 500; i++ {
		v, err := rand.Uint64n(n)
		require.NoError(t, err)
		seen[v] = true
	}
	require.Len(t, seen, int(n))
}

func TestUint64(t *testing.T) {
	_, err := rand.Uint64()
	require.NoError(t, err)
}
