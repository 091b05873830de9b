package worker

import "crypto/ed25519"

// Result is an immutable record emitted when a worker finds a keypair whose
// base58 public key satisfies the configured pattern.
type Result struct {
	PublicKey        ed25519.PublicKey  // 32 bytes
	SecretKey        ed25519.PrivateKey // 64 bytes, Ed25519 expanded form: seed || public
	Base58PublicKey  string             // canonical base58 encoding, computed once at emission
	AttemptsBySearch uint64             // snapshot of Searched when the match was emitted
	DurationNanos    int64              // monotonic nanoseconds since the generator started
	IOFault          bool               // set when persistence failed twice and the result was requeued anyway
}
