package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"git.gammaspectra.live/P2Pool/spectrex/memoryhard"
	"git.gammaspectra.live/P2Pool/spectrex/pow"
	"git.gammaspectra.live/P2Pool/spectrex/types"
	"git.gammaspectra.live/P2Pool/spectrex/utils"
	"github.com/urfave/cli"
)

// defaultPrePowHash little-endian words 1, 2, 3, 4
const defaultPrePowHash = "0100000000000000020000000000000003000000000000000400000000000000"

// memoryHardHasher the memory-hard stage is linked in by the embedding miner, this tool only checks the rest of the pipeline
var memoryHardHasher = memoryhard.Passthrough

func parseBits(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	bits, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bits: %w", err)
	}
	return uint32(bits), nil
}

func parsePrePowHash(s string) (types.Uint256, error) {
	h, err := types.HashFromString(s)
	if err != nil {
		return types.Uint256{}, fmt.Errorf("hash: %w", err)
	}
	return types.Uint256FromBytes(h), nil
}

// jobConfig from --job when set, otherwise from the individual flags
func jobConfig(c *cli.Context) (*pow.JobConfig, error) {
	if fileName := c.String("job"); fileName != "" {
		f, err := os.Open(fileName)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return pow.ReadJobConfig(f)
	}

	h, err := types.HashFromString(c.String("hash"))
	if err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}

	bits, err := parseBits(c.String("bits"))
	if err != nil {
		return nil, err
	}
	if bits != 0 && types.Uint256FromCompactBits(bits).IsZero() {
		return nil, errors.New("bits decode to a zero target")
	}

	return &pow.JobConfig{
		PrePowHash: &h,
		Timestamp:  c.Uint64("timestamp"),
		Bits:       bits,
	}, nil
}

func printJSON(w io.Writer, v any) error {
	buf, err := utils.MarshalJSONIndent(v, "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", buf)
	return err
}
