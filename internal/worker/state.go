package worker

import (
	"sync/atomic"
	"time"
)

// SharedState is the process-wide coordination block for one generator
// instance: shared progress counters, the bounded results queue, and the
// termination flag every worker checks periodically.
type SharedState struct {
	found      atomic.Int32
	searched   atomic.Int64
	target     int64
	breakOut   atomic.Bool
	running    atomic.Int64 // count of workers that have not yet exited
	Results    chan Result
	StartedAt  time.Time
	CheckEvery int
}

// NewSharedState builds the shared state for a search targeting target
// matches, with a bounded results queue of the given capacity.
func NewSharedState(target int64, queueCapacity, checkEvery int) *SharedState {
	return &SharedState{
		target:     target,
		Results:    make(chan Result, queueCapacity),
		StartedAt:  time.Now(),
		CheckEvery: checkEvery,
	}
}

// Found returns the current snapshot of the found counter.
func (s *SharedState) Found() int32 { return s.found.Load() }

// Searched returns the current, possibly lagging, snapshot of the searched
// counter.
func (s *SharedState) Searched() int64 { return s.searched.Load() }

// Target returns the configured findKeys bound.
func (s *SharedState) Target() int64 { return s.target }

// TargetReached reports whether enough matches have been found to stop.
func (s *SharedState) TargetReached() bool {
	return int64(s.found.Load()) >= s.target
}

// BreakOut signals every worker to exit at its next periodic check. It is
// idempotent.
func (s *SharedState) BreakOut() { s.breakOut.Store(true) }

// IsBreakingOut reports whether BreakOut has been called.
func (s *SharedState) IsBreakingOut() bool { return s.breakOut.Load() }

// ShouldStop reports whether a worker should exit at its next check: either
// the target has been reached or an external break was requested.
func (s *SharedState) ShouldStop() bool {
	return s.IsBreakingOut() || s.TargetReached()
}

// FlushSearched adds n mismatches accumulated locally by a worker into the
// shared searched counter.
func (s *SharedState) FlushSearched(n int64) { s.searched.Add(n) }

// RecordMatch increments found and returns the post-increment value, per the
// ordering rule that persistence happens-before this increment.
func (s *SharedState) RecordMatch() int32 { return s.found.Add(1) }

// EnterWorker registers one worker as running.
func (s *SharedState) EnterWorker() { s.running.Add(1) }

// ExitWorker marks one worker as finished and returns the number still
// running.
func (s *SharedState) ExitWorker() int64 { return s.running.Add(-1) }

// WorkersRunning returns the number of workers that have not yet exited.
func (s *SharedState) WorkersRunning() int64 { return s.running.Load() }
