package vanity

import (
	"go.uber.org/zap"

	"github.com/sava-labs/solanavanity/internal/keygen"
)

// Runner is the executor abstraction workers are submitted to. The zero
// value of Options uses a runner that simply spawns a goroutine per worker;
// callers that already own a worker pool can supply their own to bound
// concurrency externally instead.
type Runner func(task func())

func goroutineRunner(task func()) { go task() }

// Options configures a search. At least one of BeginsWith or EndsWith must
// be non-empty.
type Options struct {
	// KeyPath is the directory matched keypairs are written into.
	KeyPath string

	// RandomSourceFactory produces one randomness source per worker.
	// Defaults to keygen.DefaultRandomSourceFactory.
	RandomSourceFactory keygen.RandomSourceFactory

	// SigVerify enables the sign+verify self-check on every candidate.
	SigVerify bool

	// Runner submits a worker task for execution. Defaults to launching a
	// goroutine per worker.
	Runner Runner

	// NumThreads is the number of concurrent workers to run. Must be >= 1.
	NumThreads int

	// BeginsWith and EndsWith are base58 patterns anchored at the start and
	// end of the encoded public key, respectively. Either may be empty, but
	// not both.
	BeginsWith string
	EndsWith   string

	// CaseSensitive applies to both BeginsWith and EndsWith.
	CaseSensitive bool

	// FindKeys is the number of matches to search for. Must be in
	// [1, 2^31-1].
	FindKeys int64

	// CheckEvery is the number of mismatches a worker accumulates locally
	// before flushing into the shared searched counter and checking for
	// termination. Defaults to 262_144.
	CheckEvery int

	// Logger receives structured lifecycle and fault events. Defaults to a
	// no-op logger.
	Logger *zap.Logger
}
