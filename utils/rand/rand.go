// Package rand is a wrapper around `crypto/rand` that adds the uniform
// sampling helpers the standard library keeps private. It deliberately has
// no seeding, so callers that need reproducible sequences should not use
// this package.
//
// All functions return an error if the system entropy source fails, which
// callers should treat as an irrecoverable exception.
package rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Uint64 returns a random uint64.
func Uint64() (uint64, error) {
	// allocate a fresh buffer per call to keep the function thread safe
	buffer := make([]byte, 8)
	if _, err := rand.Read(buffer); err != nil {
		return 0, fmt.Errorf("could not read random bytes: %w", err)
	}
	return binary.LittleEndian.Uint64(buffer), nil
}

// Uint64n returns a random uint64 strictly less than `n`.
// `n` must be strictly positive, otherwise an error is returned.
func Uint64n(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("n should be strictly positive, got %d", n)
	}
	// the max returnable random value is n-1
	max := n - 1

	// count the bytes and bits needed to represent max
	size := 0
	for tmp := max; tmp != 0; tmp >>= 8 {
		size++
	}
	mask := uint64(0)
	for max&mask != max {
		mask = (mask << 1) | 1
	}

	buffer := make([]byte, 8)

	// Reducing a 64-bit random modulo n would skew the distribution. Instead,
	// draw values of the minimal bit size and discard those above max; each
	// round accepts with probability larger than 1/2, so the loop terminates
	// quickly in expectation.
	random := n
	for random > max {
		if _, err := rand.Read(buffer[:size]); err != nil {
			return 0, fmt.Errorf("could not read random bytes: %w", err)
		}
		random = binary.LittleEndian.Uint64(buffer)
		random &= mask
	}
	return random, nil
}
