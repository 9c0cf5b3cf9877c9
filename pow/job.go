package pow

import (
	"errors"
	"fmt"

	"git.gammaspectra.live/P2Pool/spectrex/memoryhard"
	"git.gammaspectra.live/P2Pool/spectrex/types"
	"git.gammaspectra.live/P2Pool/spectrex/utils"
)

var (
	ErrLengthMismatch = errors.New("pre-pow hash length mismatch")
	ErrNoHasher       = errors.New("no memory-hard hasher")
)

// Job precomputed proof-of-work state for one (pre-image hash, timestamp) pair.
// All fields are read-only after construction, Calculate can be called from any number of goroutines.
type Job struct {
	id         uint64
	prePowHash types.Uint256
	timestamp  uint64

	matrix     *Matrix
	hasher     PowHasher
	memoryHard memoryhard.Hasher
}

type jobOptions struct {
	cache MatrixCache
}

type JobOption func(o *jobOptions)

// WithMatrixCache looks up and stores the job matrix in cache. A nil cache is ignored.
func WithMatrixCache(cache MatrixCache) JobOption {
	return func(o *jobOptions) {
		if cache != nil {
			o.cache = cache
		}
	}
}

// NewJob prePowHash must be exactly types.HashSize bytes, it is never truncated or padded
func NewJob(id uint64, prePowHash []byte, timestamp uint64, hasher memoryhard.Hasher, options ...JobOption) (*Job, error) {
	h, ok := types.HashFromBytes(prePowHash)
	if !ok {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrLengthMismatch, types.HashSize, len(prePowHash))
	}
	return NewJobFromHash(id, types.Uint256FromBytes(h), timestamp, hasher, options...)
}

// NewJobFromHex decodes exactly 64 hex characters of pre-pow hash
func NewJobFromHex(id uint64, prePowHash string, timestamp uint64, hasher memoryhard.Hasher, options ...JobOption) (*Job, error) {
	var buf [types.HashSize]byte
	if err := utils.DecodeHexTo(buf[:], prePowHash); err != nil {
		return nil, fmt.Errorf("pre-pow hash: %w", err)
	}
	return NewJobFromHash(id, types.Uint256FromBytes(buf), timestamp, hasher, options...)
}

func NewJobFromHash(id uint64, prePowHash types.Uint256, timestamp uint64, hasher memoryhard.Hasher, options ...JobOption) (*Job, error) {
	if hasher == nil {
		return nil, ErrNoHasher
	}

	o := jobOptions{
		cache: NewNilMatrixCache(),
	}
	for _, opt := range options {
		opt(&o)
	}

	j := &Job{
		id:         id,
		prePowHash: prePowHash,
		timestamp:  timestamp,
		matrix:     CachedMatrix(o.cache, prePowHash),
		hasher:     NewPowHasher(prePowHash, timestamp),
		memoryHard: hasher,
	}

	utils.Debugf("PoW", "job %d: pre-pow hash %s, timestamp %d", id, prePowHash, timestamp)

	return j, nil
}

func (j *Job) Id() uint64 {
	return j.id
}

func (j *Job) PrePowHash() types.Uint256 {
	return j.prePowHash
}

func (j *Job) Timestamp() uint64 {
	return j.timestamp
}

func (j *Job) Matrix() *Matrix {
	return j.matrix
}

// Calculate proof-of-work value for nonce, in big-endian byte order
func (j *Job) Calculate(nonce uint64) types.Hash {
	return types.Hash(j.CalculateUint256(nonce).BigEndianBytes())
}

// CalculateUint256 same value as Calculate, as a number
func (j *Job) CalculateUint256(nonce uint64) types.Uint256 {
	digest := j.hasher.FinalizeWithNonce(nonce)
	mixed := j.memoryHard.Hash(digest.Bytes())
	return j.matrix.HeavyHash(types.Uint256FromBytes(mixed))
}

// CalculateHex lowercase hex string of Calculate
func (j *Job) CalculateHex(nonce uint64) string {
	h := j.Calculate(nonce)
	return utils.EncodeHex(h[:])
}
