package utils

import (
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrStopWork can be returned by a SplitWork callback to end the whole run early without reporting an error
var ErrStopWork = errors.New("stop work")

// SplitWork hands out work indexes 0..workSize-1 to routines goroutines through a shared counter.
// Each index is handed out exactly once. When routines <= 0, runtime.NumCPU() minus |routines| is used, with a minimum of one.
// init, when not nil, is called once per routine before any work starts.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU()+routines, 1)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	if init != nil {
		for routineIndex := range routines {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var counter atomic.Uint64
	var stopped atomic.Bool

	var eg errgroup.Group

	for routineIndex := range routines {
		eg.Go(func() error {
			for !stopped.Load() {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					stopped.Store(true)
					if errors.Is(err, ErrStopWork) {
						return nil
					}
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
