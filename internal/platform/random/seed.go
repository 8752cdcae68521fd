// Package random provides seed helpers for board generation.
//
// Seeds come from crypto/rand unless an operator pins one for a
// reproducible layout.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns pinned when it is non-zero, otherwise a fresh seed
// from generate.
func ResolveSeed(pinned int64, generate func() (int64, error)) (int64, error) {
	if pinned != 0 {
		return pinned, nil
	}
	if generate == nil {
		generate = NewSeed
	}
	return generate()
}

// NewRand returns a math/rand generator for the seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
