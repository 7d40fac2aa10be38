// Package randutil derives per-instance random generators from explicit
// seeds. Every game and every agent gets its own generator so that
// concurrently running simulations never share RNG state.
package randutil

import rand "math/rand/v2"

// New returns a generator seeded deterministically from seed. The two
// 64-bit PCG seeds are expanded with a splitmix64 finalizer so that
// adjacent input seeds (base+0, base+1, ...) produce unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u^0x9e3779b97f4a7c15)))
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
