// Package persist writes matched keypairs to disk in the documented JSON
// array file format.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Sink writes secret keys under a fixed directory, one file per match.
type Sink struct {
	dir string
}

// NewSink returns a Sink rooted at dir. dir is created lazily on first write
// rather than eagerly here, so constructing a Sink never touches the disk.
func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

// Dir returns the directory this Sink writes into.
func (s *Sink) Dir() string { return s.dir }

// Write persists secretKey (the 64-byte Ed25519 expanded form) to
// <dir>/<base58PublicKey>.json as a JSON array of decimal byte values. A
// failed write is retried exactly once before the error is returned to the
// caller, who is expected to flag the result rather than drop it.
func (s *Sink) Write(base58PublicKey string, secretKey []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("persist: create %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, base58PublicKey+".json")

	err := s.writeOnce(path, secretKey)
	if err == nil {
		return nil
	}
	if err := s.writeOnce(path, secretKey); err != nil {
		return fmt.Errorf("persist: write %s failed twice: %w", path, err)
	}
	return nil
}

func (s *Sink) writeOnce(path string, secretKey []byte) error {
	values := make([]int, len(secretKey))
	for i, b := range secretKey {
		values[i] = int(b)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
