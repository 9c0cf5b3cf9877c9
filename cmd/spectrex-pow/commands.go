package main

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"git.gammaspectra.live/P2Pool/spectrex/crypto"
	"git.gammaspectra.live/P2Pool/spectrex/pow"
	"git.gammaspectra.live/P2Pool/spectrex/types"
	"git.gammaspectra.live/P2Pool/spectrex/utils"
	"github.com/urfave/cli"
)

func runHeader(c *cli.Context) error {
	if c.String("data") == "" {
		return errors.New("missing header data")
	}
	data, err := utils.DecodeHex(c.String("data"))
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}

	h := crypto.BlockHash(data)

	return printJSON(c.App.Writer, struct {
		PrePowHash types.Hash    `json:"pre_pow_hash"`
		Value      types.Uint256 `json:"value"`
	}{
		PrePowHash: h.Bytes(),
		Value:      h,
	})
}

func runBits(c *cli.Context) error {
	bits, err := parseBits(c.String("bits"))
	if err != nil {
		return err
	}

	target := types.Uint256FromCompactBits(bits)

	return printJSON(c.App.Writer, struct {
		Bits       string           `json:"bits"`
		Target     types.Uint256    `json:"target"`
		Difficulty types.Difficulty `json:"difficulty"`
		Normalized string           `json:"normalized"`
	}{
		Bits:       fmt.Sprintf("0x%08x", bits),
		Target:     target,
		Difficulty: types.DifficultyFromTarget(target),
		Normalized: fmt.Sprintf("0x%08x", target.CompactBits()),
	})
}

func runSponge(c *cli.Context) error {
	prePowHash, err := parsePrePowHash(c.String("hash"))
	if err != nil {
		return err
	}

	result := pow.NewPowHasher(prePowHash, c.Uint64("timestamp")).FinalizeWithNonce(c.Uint64("nonce"))

	return printJSON(c.App.Writer, struct {
		Digest types.Hash    `json:"digest"`
		Value  types.Uint256 `json:"value"`
		Lanes  string        `json:"lanes"`
	}{
		Digest: result.Bytes(),
		Value:  result,
		Lanes:  laneString(result),
	})
}

// laneString prints each 64-bit word in minimal hex, without zero padding, in lane order
func laneString(u types.Uint256) string {
	buf := make([]byte, 0, types.HashSize*2)
	for _, w := range u {
		buf = strconv.AppendUint(buf, w, 16)
	}
	return string(buf)
}

func runCalculate(c *cli.Context) error {
	config, err := jobConfig(c)
	if err != nil {
		return err
	}

	job, err := config.NewJob(memoryHardHasher)
	if err != nil {
		return err
	}

	nonce := c.Uint64("nonce")
	result := job.Calculate(nonce)

	out := struct {
		Nonce  uint64     `json:"nonce"`
		Hash   types.Hash `json:"hash"`
		Target *bool      `json:"meets_target,omitempty"`
	}{
		Nonce: nonce,
		Hash:  result,
	}
	if config.Bits != 0 {
		meets := config.Difficulty().CheckPoWHash(result)
		out.Target = &meets
	}

	return printJSON(c.App.Writer, out)
}

type sweepShare struct {
	Timestamp uint64     `json:"timestamp"`
	Nonce     uint64     `json:"nonce"`
	Hash      types.Hash `json:"hash"`
}

// sweepBest lowest hash seen, found stays false for a routine that was handed no work
type sweepBest struct {
	share sweepShare
	found bool
}

func (b *sweepBest) update(share sweepShare) {
	if !b.found || share.Hash.Compare(b.share.Hash) < 0 {
		b.share, b.found = share, true
	}
}

// maxSweepShares shares kept for output, the count is still reported in full
const maxSweepShares = 16

type sweep struct {
	start, count uint64
	threads      int
	difficulty   types.Difficulty

	sharesLock sync.Mutex
	shares     []sweepShare
	shareCount uint64
}

func (s *sweep) addShare(share sweepShare) {
	s.sharesLock.Lock()
	defer s.sharesLock.Unlock()
	s.shareCount++
	if len(s.shares) < maxSweepShares {
		s.shares = append(s.shares, share)
	}
}

// run evaluates the nonce range of job and returns its lowest hash
func (s *sweep) run(job *pow.Job) (best sweepBest, err error) {
	var routineBest []sweepBest

	err = utils.SplitWork(s.threads, s.count, func(workIndex uint64, routineIndex int) error {
		share := sweepShare{
			Timestamp: job.Timestamp(),
			Nonce:     s.start + workIndex,
		}
		share.Hash = job.Calculate(share.Nonce)

		routineBest[routineIndex].update(share)

		if !s.difficulty.IsZero() && s.difficulty.CheckPoWHash(share.Hash) {
			utils.Debugf("CLI", "share at timestamp %d nonce %d: %s", share.Timestamp, share.Nonce, share.Hash)
			s.addShare(share)
		}
		return nil
	}, func(routines, routineIndex int) error {
		if routineIndex == 0 {
			routineBest = make([]sweepBest, routines)
		}
		return nil
	})
	if err != nil {
		return best, err
	}

	for _, b := range routineBest {
		if b.found {
			best.update(b.share)
		}
	}
	return best, nil
}

func runSweep(c *cli.Context) error {
	config, err := jobConfig(c)
	if err != nil {
		return err
	}

	templates := c.Uint64("templates")
	if templates == 0 {
		return errors.New("no templates to sweep")
	}

	s := &sweep{
		start:      c.Uint64("start"),
		count:      c.Uint64("count"),
		threads:    c.Int("threads"),
		difficulty: config.Difficulty(),
	}
	if s.count == 0 {
		return errors.New("empty nonce range")
	}

	// templates only differ in timestamp, so they share one matrix
	cache := pow.NewMatrixCache(pow.DefaultMatrixCacheSize)
	jobs := pow.NewJobs()
	for i := range templates {
		template := *config
		template.Id = config.Id + i
		template.Timestamp = config.Timestamp + i

		job, err := template.NewJob(memoryHardHasher, pow.WithMatrixCache(cache))
		if err != nil {
			return err
		}
		if !jobs.Add(job) {
			return fmt.Errorf("duplicate job id %d", job.Id())
		}
	}

	hits, misses := cache.Stats()
	utils.Logf("CLI", "sweeping %d nonces from %d over %d templates, pre-pow hash %s", s.count, s.start, jobs.Len(), config.PrePowHash)
	utils.Debugf("CLI", "matrix cache: %d hits, %d misses", hits, misses)

	var overall sweepBest
	startTime := time.Now()
	for id := config.Id; jobs.Len() > 0; id++ {
		job, ok := jobs.Get(id)
		if !ok {
			return fmt.Errorf("missing job %d", id)
		}

		best, err := s.run(job)
		if err != nil {
			return err
		}
		if best.found {
			overall.update(best.share)
		}

		jobs.Delete(id)
	}
	elapsed := time.Since(startTime)

	total := s.count * templates
	utils.Logf("CLI", "%d nonces in %s, %s", total, elapsed, utils.HashRate(total, elapsed.Seconds()))

	return printJSON(c.App.Writer, struct {
		Count      uint64       `json:"count"`
		Seconds    float64      `json:"seconds"`
		Best       sweepShare   `json:"best"`
		ShareCount uint64       `json:"share_count"`
		Shares     []sweepShare `json:"shares,omitempty"`
	}{
		Count:      total,
		Seconds:    elapsed.Seconds(),
		Best:       overall.share,
		ShareCount: s.shareCount,
		Shares:     s.shares,
	})
}
