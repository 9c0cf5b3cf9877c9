package pow

import (
	"strings"
	"testing"

	"git.gammaspectra.live/P2Pool/spectrex/memoryhard"
	"git.gammaspectra.live/P2Pool/spectrex/types"
	"github.com/stretchr/testify/require"
)

const testJobConfig = `{"id":3,"pre_pow_hash":"0100000000000000020000000000000003000000000000000400000000000000","timestamp":1,"bits":486604799}`

func TestNewJobConfigFromJSON(t *testing.T) {
	c, err := NewJobConfigFromJSON([]byte(testJobConfig))
	require.NoError(t, err)
	require.Equal(t, uint64(3), c.Id)
	require.Equal(t, uint64(1), c.Timestamp)
	require.Equal(t, uint32(0x1d00ffff), c.Bits)
	require.Equal(t, types.DifficultyFrom64(0x100010001), c.Difficulty())

	job, err := c.NewJob(memoryhard.Passthrough)
	require.NoError(t, err)
	require.Equal(t, types.Uint256{1, 2, 3, 4}, job.PrePowHash())
	require.Equal(t, uint64(3), job.Id())
}

func TestReadJobConfig(t *testing.T) {
	c, err := ReadJobConfig(strings.NewReader(testJobConfig))
	require.NoError(t, err)
	require.Equal(t, uint64(3), c.Id)

	_, err = ReadJobConfig(strings.NewReader(`{"id":3,"pre_pow_hash":"0100000000000000020000000000000003000000000000000400000000000000","nonce":1}`))
	require.Error(t, err, "unknown field accepted")

	_, err = ReadJobConfig(strings.NewReader(testJobConfig + testJobConfig))
	require.Error(t, err, "trailing value accepted")
}

func TestJobConfig_Verify(t *testing.T) {
	_, err := NewJobConfigFromJSON([]byte(`{"id":1,"timestamp":1}`))
	require.Error(t, err, "missing hash accepted")

	_, err = NewJobConfigFromJSON([]byte(`{"id":1,"pre_pow_hash":"01","timestamp":1}`))
	require.Error(t, err, "short hash accepted")

	_, err = NewJobConfigFromJSON([]byte(`{"id":1,"pre_pow_hash":"0100000000000000020000000000000003000000000000000400000000000000","bits":58720256}`))
	require.Error(t, err, "negative target accepted")

	_, err = NewJobConfigFromJSON([]byte(`{"id":1,"pre_pow_hash":null,"timestamp":1}`))
	require.Error(t, err, "null hash accepted")

	c, err := NewJobConfigFromJSON([]byte(`{"id":1,"pre_pow_hash":"0100000000000000020000000000000003000000000000000400000000000000"}`))
	require.NoError(t, err)
	require.True(t, c.Difficulty().IsZero())
}

func TestJobConfig_ZeroHash(t *testing.T) {
	c, err := NewJobConfigFromJSON([]byte(`{"id":1,"pre_pow_hash":"` + types.ZeroHash.String() + `","timestamp":1}`))
	require.NoError(t, err)
	require.NotNil(t, c.PrePowHash)
	require.Equal(t, types.ZeroHash, *c.PrePowHash)

	job, err := c.NewJob(memoryhard.Passthrough)
	require.NoError(t, err)
	require.True(t, job.PrePowHash().IsZero())

	var missing JobConfig
	_, err = missing.NewJob(memoryhard.Passthrough)
	require.ErrorIs(t, err, ErrLengthMismatch)
}
