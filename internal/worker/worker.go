// Package worker implements the vanity search hot loop: generate a
// candidate keypair, match it against compiled patterns, optionally
// self-verify, persist a match, and publish it to the shared results queue.
package worker

import (
	"time"

	"go.uber.org/zap"

	"github.com/sava-labs/solanavanity/internal/base58"
	"github.com/sava-labs/solanavanity/internal/keygen"
	"github.com/sava-labs/solanavanity/internal/pattern"
	"github.com/sava-labs/solanavanity/internal/persist"
)

// DefaultCheckEvery is the number of mismatches a worker accumulates locally
// before flushing into the shared Searched counter and checking for
// termination.
const DefaultCheckEvery = 262_144

// Worker holds everything one goroutine needs to run the search loop: its
// own randomness source, references to the compiled matcher(s), the shared
// counters and queue, and the persistence sink. Workers own no state shared
// with each other besides SharedState and the compiled patterns, both of
// which are safe for concurrent read.
type Worker struct {
	ID         int
	RNG        keygen.RandomSource
	SigVerify  bool
	Verify     keygen.VerifyFunc // nil uses the real Ed25519 implementation; tests may inject a broken double
	BeginsWith *pattern.Subsequence
	EndsWith   *pattern.Subsequence
	State      *SharedState
	Sink       *persist.Sink
	CheckEvery int
	Logger     *zap.Logger
}

// Run executes the search loop until the target is reached or an external
// break is observed. It is meant to be launched as a goroutine (or task on
// an externally supplied executor); Run itself never spawns anything.
func (w *Worker) Run() {
	w.State.EnterWorker()
	defer w.State.ExitWorker()

	checkEvery := w.CheckEvery
	if checkEvery <= 0 {
		checkEvery = DefaultCheckEvery
	}

	var kg *keygen.Generator
	if w.Verify != nil {
		kg = keygen.NewWithVerifier(w.RNG, w.SigVerify, w.Verify)
	} else {
		kg = keygen.New(w.RNG, w.SigVerify)
	}
	var mismatches int64

	flush := func() bool {
		if mismatches == 0 {
			return w.State.ShouldStop()
		}
		w.State.FlushSearched(mismatches)
		mismatches = 0
		return w.State.ShouldStop()
	}

	for {
		if w.State.ShouldStop() {
			return
		}

		pub, priv, ok, err := kg.Next()
		if err != nil {
			w.Logger.Error("keypair generation unavailable, worker exiting", zap.Int("worker", w.ID), zap.Error(err))
			return
		}
		if !ok {
			// GenerationFault: sigVerify rejected the candidate. Local to
			// this worker, non-fatal: count it as a mismatch and continue.
			w.Logger.Debug("sigVerify rejected candidate", zap.Int("worker", w.ID))
			mismatches++
			if mismatches >= int64(checkEvery) && flush() {
				return
			}
			continue
		}

		if !w.matches(pub) {
			mismatches++
			if mismatches >= int64(checkEvery) && flush() {
				return
			}
			continue
		}

		w.emit(pub, priv)
		if w.State.TargetReached() {
			return
		}
	}
}

// matches applies the prefix constraint before the suffix constraint, since
// the prefix check is cheaper on average and rejects most candidates first.
func (w *Worker) matches(pub []byte) bool {
	if w.BeginsWith != nil && !w.BeginsWith.MatchesPrefix(pub) {
		return false
	}
	if w.EndsWith != nil && !w.EndsWith.MatchesSuffix(pub) {
		return false
	}
	return true
}

// emit persists a match, then publishes it to the shared queue, then bumps
// found. This ordering matters: persistence happens-before the queue send,
// which happens-before the found increment, so any consumer observing
// found == target is guaranteed every corresponding file already exists.
func (w *Worker) emit(pub, priv []byte) {
	base58Key := base58.Encode(pub)

	result := Result{
		PublicKey:        pub,
		SecretKey:        priv,
		Base58PublicKey:  base58Key,
		AttemptsBySearch: uint64(w.State.Searched()),
		DurationNanos:    time.Since(w.State.StartedAt).Nanoseconds(),
	}

	if err := w.Sink.Write(base58Key, priv); err != nil {
		w.Logger.Warn("persisting match failed twice, requeuing with fault flag",
			zap.Int("worker", w.ID), zap.String("key", base58Key), zap.Error(err))
		result.IOFault = true
	}

	w.State.Results <- result // blocks if the queue is full; intentional backpressure
	w.State.RecordMatch()
}
