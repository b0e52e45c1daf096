package gbm

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// golden is the SplitMix64 increment (floor(2^64/phi)), used both inside
// splitmix64 and to spread path indices across the seed space.
const golden = 0x9E3779B97F4A7C15

// splitmix64 is the SplitMix64 finalizer. It turns a base seed and a path
// index into well-separated sub-stream seeds, so every path draws from its
// own independent source and the ensemble is identical whether paths are
// generated serially or in parallel.
func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// subSeed derives the seed of sub-stream idx from the base seed.
func subSeed(base, idx uint64) uint64 {
	return splitmix64(base + (idx+1)*golden)
}

// entropySeed draws a base seed from the OS entropy pool, falling back to
// the wall clock if the pool is unreadable.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// increments draws n Brownian increments dB_k ~ N(0, dt) from src.
// Their running sum is a standard Wiener path sampled on the grid.
func increments(n int, dt float64, src rand.Source) []float64 {
	norm := distuv.Normal{Mu: 0, Sigma: math.Sqrt(dt), Src: src}
	dB := make([]float64, n)
	for i := range dB {
		dB[i] = norm.Rand()
	}
	return dB
}
