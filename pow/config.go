package pow

import (
	"errors"
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/spectrex/memoryhard"
	"git.gammaspectra.live/P2Pool/spectrex/types"
	"git.gammaspectra.live/P2Pool/spectrex/utils"
)

// JobConfig textual description of a job, as handed over by a pool or a test fixture
type JobConfig struct {
	Id uint64 `json:"id"`

	// PrePowHash required, nil when the field is absent
	PrePowHash *types.Hash `json:"pre_pow_hash"`
	Timestamp  uint64      `json:"timestamp"`

	// Bits optional compact share target
	Bits uint32 `json:"bits,omitempty"`
}

func NewJobConfigFromJSON(data []byte) (*JobConfig, error) {
	var c JobConfig
	if err := utils.UnmarshalJSON(data, &c); err != nil {
		return nil, err
	}
	if err := c.verify(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadJobConfig decodes a single JobConfig from reader, unknown fields are rejected
func ReadJobConfig(reader io.Reader) (*JobConfig, error) {
	var c JobConfig
	if err := utils.DecodeJSONStrict(reader, &c); err != nil {
		return nil, err
	}
	if err := c.verify(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *JobConfig) verify() error {
	if c.PrePowHash == nil {
		return errors.New("missing pre_pow_hash")
	}
	if c.Bits != 0 && types.Uint256FromCompactBits(c.Bits).IsZero() {
		return errors.New("bits decode to a zero target")
	}
	return nil
}

// Difficulty share difficulty of Bits, zero when no bits are set
func (c *JobConfig) Difficulty() types.Difficulty {
	if c.Bits == 0 {
		return types.ZeroDifficulty
	}
	return types.DifficultyFromCompactBits(c.Bits)
}

func (c *JobConfig) NewJob(hasher memoryhard.Hasher, options ...JobOption) (*Job, error) {
	if c.PrePowHash == nil {
		return nil, fmt.Errorf("%w: expected %d bytes, got 0", ErrLengthMismatch, types.HashSize)
	}
	return NewJob(c.Id, c.PrePowHash[:], c.Timestamp, hasher, options...)
}
