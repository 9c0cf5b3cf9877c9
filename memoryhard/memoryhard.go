// Package memoryhard defines the boundary to the memory-hard intermediate hash of the proof-of-work pipeline.
// The primitive itself is supplied by the embedding miner.
package memoryhard

import "git.gammaspectra.live/P2Pool/spectrex/types"

// Hasher maps a 32 byte input to a 32 byte output deterministically.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Hash(input types.Hash) types.Hash
}

// Func adapts a plain function into a Hasher
type Func func(input types.Hash) types.Hash

func (f Func) Hash(input types.Hash) types.Hash {
	return f(input)
}

type passthrough struct{}

func (passthrough) Hash(input types.Hash) types.Hash {
	return input
}

// Passthrough returns its input unchanged. Only useful to exercise the rest of the pipeline in isolation.
var Passthrough Hasher = passthrough{}
