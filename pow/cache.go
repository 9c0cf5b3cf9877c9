package pow

import (
	"git.gammaspectra.live/P2Pool/spectrex/types"
	"git.gammaspectra.live/P2Pool/spectrex/utils"
)

// MatrixCache shares generated matrices between jobs with the same pre-image hash, typically
// templates that only differ in timestamp
type MatrixCache utils.Cache[types.Uint256, *Matrix]

// DefaultMatrixCacheSize enough for a handful of concurrent templates
const DefaultMatrixCacheSize = 16

func NewMatrixCache(size int) MatrixCache {
	return utils.NewLRUCache[types.Uint256, *Matrix](size)
}

// NewNilMatrixCache keeps nothing, every job generates its own matrix
func NewNilMatrixCache() MatrixCache {
	return utils.NewNilCache[types.Uint256, *Matrix]()
}

// CachedMatrix returns the matrix for prePowHash from cache, generating and storing it on a miss
func CachedMatrix(cache MatrixCache, prePowHash types.Uint256) *Matrix {
	if mat, ok := cache.Get(prePowHash); ok {
		return mat
	}
	mat := GenerateMatrix(prePowHash)
	cache.Set(prePowHash, mat)
	return mat
}
