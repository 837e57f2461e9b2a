// internal/rng/source.go
//
// Random source shared by the games.
//
// The games never reach for a package-level generator; whoever builds a game
// hands it a Source. Production runs use an entropy-seeded ChaCha8 stream,
// reproducible runs (RPS_SEED) and tests use a fixed PCG seed or a mock.

package rng

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the games draw from.
type Source interface {
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Uint64 returns 64 uniform random bits.
	Uint64() uint64
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
}

var _ Source = (*rand.Rand)(nil)

// pcgStream is the second PCG word; any odd constant keeps the stream stable.
const pcgStream = 0x9e3779b97f4a7c15

// New returns a Source.
// A non-zero seed gives a reproducible PCG generator; seed 0 asks the OS for
// 32 bytes of entropy and keys a ChaCha8 generator with them.
func New(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, pcgStream))
	}
	var key [32]byte
	_, _ = crand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}
