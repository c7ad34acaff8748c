// SPDX-License-Identifier: MIT

// Package genz: seeded parameter streams.
//
// Every (seed, family) pair owns its own math/rand stream, so the same
// problem is drawn on every platform and adding a family never shifts the
// parameters of another.
package genz

import "math/rand"

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

// familyRNG returns the parameter stream for (seed, f). The first value of
// the seed's own stream is mixed with the family index through a
// SplitMix64 finalizer to give the family's source.
func familyRNG(seed int64, f Family) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	x := uint64(rand.New(rand.NewSource(seed)).Int63())
	x ^= uint64(f) + 1 + 0x9e3779b97f4a7c15
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return rand.New(rand.NewSource(int64(x)))
}
