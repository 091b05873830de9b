// Package keygen produces Ed25519 keypairs from an injectable randomness
// source and optionally self-checks a candidate by signing and verifying a
// fixed probe message.
package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
)

// RandomSource is the single capability a keypair generator needs: fill a
// buffer with cryptographically strong random bytes. crypto/rand.Reader
// already satisfies it.
type RandomSource interface {
	Read(p []byte) (int, error)
}

// RandomSourceFactory produces a fresh RandomSource. Workers must not share
// a single instance unless it is documented safe for concurrent use; the
// default factory hands out independent instances per call.
type RandomSourceFactory func() (RandomSource, error)

// systemRandomSource wraps the OS CSPRNG. crypto/rand.Reader is itself safe
// for concurrent use, but each worker still gets its own value from the
// factory so a future non-concurrent-safe source can be swapped in without
// touching call sites.
type systemRandomSource struct{}

func (systemRandomSource) Read(p []byte) (int, error) { return rand.Read(p) }

// DefaultRandomSourceFactory returns the default RandomSourceFactory,
// wrapping the operating system's cryptographically secure generator.
func DefaultRandomSourceFactory() RandomSourceFactory {
	return func() (RandomSource, error) {
		return systemRandomSource{}, nil
	}
}

// ErrUnavailableAlgorithm names the fatal construction-time condition of the
// CSPRNG or Ed25519 implementation being unavailable. Nothing in this package
// returns it: DefaultRandomSourceFactory never fails, and Next passes a
// randomness read error through unwrapped.
var ErrUnavailableAlgorithm = errors.New("keygen: algorithm unavailable")

// probeMessage is the fixed 32-byte message signed during a sigVerify
// self-check. Its content is arbitrary; only determinism matters.
var probeMessage = [32]byte{'s', 'o', 'l', 'a', 'n', 'a', '-', 'v', 'a', 'n', 'i', 't', 'y', '-', 'p', 'r', 'o', 'b', 'e'}

// VerifyFunc signs the probe message with priv and reports whether pub
// verifies it. It is exposed so tests can inject a deliberately broken
// Ed25519 double per the sigVerify test scenario; production code always
// uses the real Ed25519 implementation.
type VerifyFunc func(pub ed25519.PublicKey, priv ed25519.PrivateKey) bool

// Generator draws Ed25519 keypairs from a RandomSource and optionally
// verifies each candidate against the probe message.
type Generator struct {
	rng       io.Reader
	sigVerify bool
	verify    VerifyFunc
}

// New builds a Generator over rng. sigVerify enables the sign+verify
// self-check described in the generation-fault error path.
func New(rng RandomSource, sigVerify bool) *Generator {
	return &Generator{rng: rng, sigVerify: sigVerify, verify: verifyProbe}
}

// NewWithVerifier is New but with an injectable VerifyFunc, letting tests
// exercise the GenerationFault path with a broken verifier without touching
// the real Ed25519 implementation.
func NewWithVerifier(rng RandomSource, sigVerify bool, verify VerifyFunc) *Generator {
	return &Generator{rng: rng, sigVerify: sigVerify, verify: verify}
}

// Next draws a fresh Ed25519 keypair. ok is false when sigVerify is enabled
// and the candidate failed self-verification; this is a GenerationFault, not
// an error, and callers should discard the candidate and try again.
func (g *Generator) Next() (pub ed25519.PublicKey, priv ed25519.PrivateKey, ok bool, err error) {
	pub, priv, err = ed25519.GenerateKey(g.rng)
	if err != nil {
		return nil, nil, false, err
	}
	if g.sigVerify && !g.verify(pub, priv) {
		return pub, priv, false, nil
	}
	return pub, priv, true, nil
}

func verifyProbe(pub ed25519.PublicKey, priv ed25519.PrivateKey) bool {
	sig := ed25519.Sign(priv, probeMessage[:])
	return ed25519.Verify(pub, probeMessage[:], sig)
}
