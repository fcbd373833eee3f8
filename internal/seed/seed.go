// Package seed resolves the session RNG seed. The seed is read once at
// startup into an immutable value threaded through the level generator;
// nothing else in the program reads the environment or clock for
// randomness.
package seed

import (
	"os"
	"strconv"
	"time"
)

// EnvVar is the environment variable that forces a deterministic pipe
// layout when set to an unsigned 64-bit integer.
const EnvVar = "FLAPPY_SEED"

// Resolve picks the session seed. Precedence: a non-zero explicit value
// (CLI flag), then a parseable FLAPPY_SEED, then the wall clock.
// An unparsable override is ignored rather than fatal.
func Resolve(explicit uint64) uint64 {
	if explicit != 0 {
		return explicit
	}
	if v, ok := FromEnv(); ok {
		return v
	}
	return FromClock()
}

// FromEnv reads FLAPPY_SEED. The second return value reports whether the
// variable was set and parsed as a uint64.
func FromEnv() (uint64, bool) {
	raw, ok := os.LookupEnv(EnvVar)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FromClock derives a seed from a high-resolution wall-clock reading.
func FromClock() uint64 {
	return uint64(time.Now().UnixNano())
}
