// Package scheduler owns the process's recurring background tasks. Each task
// runs on its own fixed-period ticker inside a single goroutine, so two runs
// of the same task never overlap; ticks that fire while a run is still in
// flight are absorbed. Wake requests an off-schedule run with the same
// guarantee.
package scheduler

import (
	"sync"
	"time"

	"weldwatch/global"
)

type task struct {
	name     string
	interval time.Duration
	run      func()
	wake     chan struct{}
}

type Scheduler struct {
	mu      sync.Mutex
	tasks   []*task
	stop    chan struct{}
	wg      sync.WaitGroup
	started bool
}

func New() *Scheduler {
	return &Scheduler{stop: make(chan struct{})}
}

// Add registers a named recurring task. Must be called before Start.
func (s *Scheduler) Add(name string, interval time.Duration, run func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, &task{
		name:     name,
		interval: interval,
		run:      run,
		wake:     make(chan struct{}, 1),
	})
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, t := range s.tasks {
		s.wg.Add(1)
		go s.loop(t)
	}
}

// Stop halts all tasks and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	close(s.stop)
	s.wg.Wait()
}

// Wake nudges the named task to run as soon as its goroutine is idle.
// Unknown names are ignored.
func (s *Scheduler) Wake(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.name == name {
			select {
			case t.wake <- struct{}{}:
			default:
			}
			return
		}
	}
}

func (s *Scheduler) loop(t *task) {
	defer s.wg.Done()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.runTask(t)
		case <-t.wake:
			s.runTask(t)
		}
	}
}

func (s *Scheduler) runTask(t *task) {
	defer func() {
		if r := recover(); r != nil {
			global.Logger.Error().Str("task", t.name).Interface("panic", r).Msg("recurring task panicked")
		}
	}()
	t.run()
}
