package worker

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sava-labs/solanavanity/internal/pattern"
	"github.com/sava-labs/solanavanity/internal/persist"
)

func newTestWorker(t *testing.T, state *SharedState, begins, ends *pattern.Subsequence, checkEvery int) *Worker {
	t.Helper()
	return &Worker{
		RNG:        rand.Reader,
		BeginsWith: begins,
		EndsWith:   ends,
		State:      state,
		Sink:       persist.NewSink(t.TempDir()),
		CheckEvery: checkEvery,
		Logger:     zap.NewNop(),
	}
}

func TestWorkerFindsTrivialPrefixAndStops(t *testing.T) {
	begins, err := pattern.Compile("1", pattern.Prefix, true)
	require.NoError(t, err)

	state := NewSharedState(1, 1024, 4096)
	w := newTestWorker(t, state, begins, nil, 4096)

	done := make(chan struct{})
	go func() { w.Run(); close(done) }()

	select {
	case result := <-state.Results:
		require.Equal(t, "1", result.Base58PublicKey[:1])
	case <-time.After(10 * time.Second):
		t.Fatal("worker did not find a match in time")
	}
	<-done
	require.Equal(t, int32(1), state.Found())
}

func TestWorkerStopsOnBreakOut(t *testing.T) {
	// "ZZZZZ" is astronomically rare; breakOut must stop the worker well
	// before it ever matches.
	begins, err := pattern.Compile("ZZZZZ", pattern.Prefix, true)
	require.NoError(t, err)

	state := NewSharedState(1, 1024, 64)
	w := newTestWorker(t, state, begins, nil, 64)

	done := make(chan struct{})
	go func() { w.Run(); close(done) }()

	time.Sleep(20 * time.Millisecond)
	state.BreakOut()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not honor breakOut in time")
	}
	require.Equal(t, int32(0), state.Found())
}

func TestWorkerSigVerifyFaultNeverEmits(t *testing.T) {
	begins, err := pattern.Compile("1", pattern.Prefix, true)
	require.NoError(t, err)

	state := NewSharedState(1, 1024, 64)
	w := newTestWorker(t, state, begins, nil, 64)
	w.SigVerify = true
	w.Verify = func(ed25519.PublicKey, ed25519.PrivateKey) bool { return false }

	done := make(chan struct{})
	go func() { w.Run(); close(done) }()

	time.Sleep(100 * time.Millisecond)
	state.BreakOut()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not exit")
	}
	require.Equal(t, int32(0), state.Found())
	require.Greater(t, state.Searched(), int64(0))
}
