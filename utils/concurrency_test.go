package utils

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestSplitWork(t *testing.T) {
	const workSize = 1000
	var seen [workSize]atomic.Uint32
	var inits atomic.Int32

	err := SplitWork(4, workSize, func(workIndex uint64, routineIndex int) error {
		seen[workIndex].Add(1)
		return nil
	}, func(routines, routineIndex int) error {
		inits.Add(1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if inits.Load() != 4 {
		t.Fatalf("expected 4 init calls, got %d", inits.Load())
	}

	for i := range seen {
		if n := seen[i].Load(); n != 1 {
			t.Fatalf("work index %d processed %d times", i, n)
		}
	}
}

func TestSplitWork_Stop(t *testing.T) {
	var processed atomic.Uint64
	err := SplitWork(2, 1<<20, func(workIndex uint64, routineIndex int) error {
		processed.Add(1)
		if workIndex == 10 {
			return ErrStopWork
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("stop should not be reported as error: %s", err)
	}
	if processed.Load() >= 1<<20 {
		t.Fatal("work was not stopped")
	}
}

func TestSplitWork_Error(t *testing.T) {
	expected := errors.New("failure")
	err := SplitWork(3, 100, func(workIndex uint64, routineIndex int) error {
		if workIndex == 50 {
			return expected
		}
		return nil
	}, nil)
	if !errors.Is(err, expected) {
		t.Fatalf("expected %s, got %v", expected, err)
	}
}
