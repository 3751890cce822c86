package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTaskRunsNeverOverlap(t *testing.T) {
	var running, maxRunning, runs atomic.Int64

	s := New()
	s.Add("slow", 10*time.Millisecond, func() {
		cur := running.Add(1)
		if cur > maxRunning.Load() {
			maxRunning.Store(cur)
		}
		time.Sleep(50 * time.Millisecond)
		running.Add(-1)
		runs.Add(1)
	})
	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	if maxRunning.Load() != 1 {
		t.Fatalf("max concurrent runs = %d, want 1", maxRunning.Load())
	}
	if runs.Load() == 0 {
		t.Fatal("task never ran")
	}
}

func TestWakeTriggersRun(t *testing.T) {
	var runs atomic.Int64

	s := New()
	s.Add("scan", time.Hour, func() { runs.Add(1) })
	s.Start()
	defer s.Stop()

	s.Wake("scan")
	deadline := time.Now().Add(time.Second)
	for runs.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("wake did not trigger a run")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStopWaitsForInFlightRun(t *testing.T) {
	finished := make(chan struct{}, 1)

	s := New()
	s.Add("slow", 10*time.Millisecond, func() {
		time.Sleep(50 * time.Millisecond)
		select {
		case finished <- struct{}{}:
		default:
		}
	})
	s.Start()
	time.Sleep(20 * time.Millisecond) // let one run start
	s.Stop()

	select {
	case <-finished:
	case <-time.After(10 * time.Millisecond):
		t.Fatal("Stop returned before in-flight run finished")
	}
}

func TestWakeUnknownTaskIsNoop(t *testing.T) {
	s := New()
	s.Add("a", time.Hour, func() {})
	s.Wake("missing") // must not panic
}

func TestTaskPanicIsContained(t *testing.T) {
	var after atomic.Int64

	s := New()
	s.Add("panicky", 10*time.Millisecond, func() {
		if after.Add(1) == 1 {
			panic("boom")
		}
	})
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if after.Load() < 2 {
		t.Fatal("task did not keep running after a panic")
	}
}
