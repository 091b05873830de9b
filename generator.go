// Package vanity is the public facade over the Solana vanity keypair search
// engine: compile a pattern, spin up N parallel workers racing to generate a
// matching Ed25519 keypair, and drain results through a bounded queue.
package vanity

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sava-labs/solanavanity/internal/keygen"
	"github.com/sava-labs/solanavanity/internal/pattern"
	"github.com/sava-labs/solanavanity/internal/persist"
	"github.com/sava-labs/solanavanity/internal/worker"
)

// Result is the record emitted for every matched keypair.
type Result = worker.Result

// MaxFindKeys is the largest findKeys value NewGenerator accepts, matching
// the atomic 32-bit found counter's range.
const MaxFindKeys = math.MaxInt32

// State is a point in the generator's RUNNING -> DRAINING -> TERMINATED
// lifecycle.
type State int

const (
	Running State = iota
	Draining
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Draining:
		return "draining"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Generator is a running vanity keypair search. Construct one with
// NewGenerator; the caller owns draining Results via Take/Poll.
type Generator struct {
	state       *worker.SharedState
	logger      *zap.Logger
	runID       string
	workersDone chan struct{}
}

// NewGenerator validates opts, compiles its patterns, and launches
// opts.NumThreads workers. Construction fails fast — with no worker started
// — on any invalid argument or if the randomness source cannot be created.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.NumThreads < 1 {
		return nil, fmt.Errorf("%w: numThreads must be >= 1, got %d", ErrInvalidArgument, opts.NumThreads)
	}
	if opts.BeginsWith == "" && opts.EndsWith == "" {
		return nil, fmt.Errorf("%w: at least one of beginsWith or endsWith is required", ErrInvalidArgument)
	}
	if opts.FindKeys < 1 || opts.FindKeys > MaxFindKeys {
		return nil, fmt.Errorf("%w: findKeys must be in [1, %d], got %d", ErrInvalidArgument, MaxFindKeys, opts.FindKeys)
	}

	var beginsWith, endsWith *pattern.Subsequence
	var err error
	if opts.BeginsWith != "" {
		beginsWith, err = pattern.Compile(opts.BeginsWith, pattern.Prefix, opts.CaseSensitive)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	if opts.EndsWith != "" {
		endsWith, err = pattern.Compile(opts.EndsWith, pattern.Suffix, opts.CaseSensitive)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}
	if err := pattern.ValidateCombined(beginsWith, endsWith); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	checkEvery := opts.CheckEvery
	if checkEvery <= 0 {
		checkEvery = worker.DefaultCheckEvery
	}

	rngFactory := opts.RandomSourceFactory
	if rngFactory == nil {
		rngFactory = keygen.DefaultRandomSourceFactory()
	}

	// Materialize every worker's randomness source before starting any
	// goroutine, so an unavailable algorithm fails construction atomically
	// instead of leaving a partially-started pool behind.
	sources := make([]keygen.RandomSource, opts.NumThreads)
	for i := range sources {
		src, err := rngFactory()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailableAlgorithm, err)
		}
		sources[i] = src
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	runner := opts.Runner
	if runner == nil {
		runner = goroutineRunner
	}

	queueCapacity := checkEvery * opts.NumThreads
	state := worker.NewSharedState(opts.FindKeys, queueCapacity, checkEvery)
	sink := persist.NewSink(opts.KeyPath)

	var wg sync.WaitGroup
	wg.Add(opts.NumThreads)
	for i := 0; i < opts.NumThreads; i++ {
		w := &worker.Worker{
			ID:         i,
			RNG:        sources[i],
			SigVerify:  opts.SigVerify,
			BeginsWith: beginsWith,
			EndsWith:   endsWith,
			State:      state,
			Sink:       sink,
			CheckEvery: checkEvery,
			Logger:     logger,
		}
		runner(func() {
			defer wg.Done()
			w.Run()
		})
	}

	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(workersDone)
	}()

	logger.Info("vanity search started",
		zap.Int("workers", opts.NumThreads),
		zap.Int64("find_keys", opts.FindKeys),
		zap.String("begins_with", opts.BeginsWith),
		zap.String("ends_with", opts.EndsWith),
	)

	return &Generator{state: state, logger: logger, runID: runID, workersDone: workersDone}, nil
}

// NumFound returns the current snapshot of the found counter.
func (g *Generator) NumFound() int32 { return g.state.Found() }

// NumSearched returns the current, possibly lagging, snapshot of the
// searched counter. It may lag by up to checkEvery*numThreads-1.
func (g *Generator) NumSearched() int64 { return g.state.Searched() }

// State reports the generator's position in its RUNNING -> DRAINING ->
// TERMINATED lifecycle.
func (g *Generator) State() State {
	select {
	case <-g.workersDone:
		if len(g.state.Results) == 0 {
			return Terminated
		}
		return Draining
	default:
	}
	if g.state.ShouldStop() {
		return Draining
	}
	return Running
}

// Take blocks until a Result is available or ctx is done, in which case it
// returns ErrInterrupted. Interrupting Take never stops the workers; call
// BreakOut for that.
func (g *Generator) Take(ctx context.Context) (Result, error) {
	select {
	case r := <-g.state.Results:
		return r, nil
	case <-ctx.Done():
		return Result{}, ErrInterrupted
	}
}

// Poll behaves like Take but gives up after timeout elapses, returning
// ok == false rather than an error.
func (g *Generator) Poll(timeout time.Duration) (result Result, ok bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case r := <-g.state.Results:
		return r, true
	case <-timer.C:
		return Result{}, false
	}
}

// BreakOut signals every worker to exit at its next periodic check. It is
// idempotent and safe to call multiple times or after the search has
// already finished.
func (g *Generator) BreakOut() {
	g.state.BreakOut()
	g.logger.Info("breakOut requested")
}
