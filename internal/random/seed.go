// Package random provides cryptographic seed generation helpers.
//
// Seeds initialize the deterministic dice sources, so a roll can be replayed
// by passing the reported seed back in.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns *requested when the caller supplied a seed, otherwise a
// fresh seed from NewSeed. The second result reports whether the seed came
// from the caller.
func ResolveSeed(requested *int64) (int64, bool, error) {
	if requested != nil {
		return *requested, true, nil
	}
	seed, err := NewSeed()
	if err != nil {
		return 0, false, err
	}
	return seed, false, nil
}
