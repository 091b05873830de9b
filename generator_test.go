package vanity

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewGeneratorRejectsNoPattern(t *testing.T) {
	_, err := NewGenerator(Options{NumThreads: 1, FindKeys: 1, KeyPath: t.TempDir()})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewGeneratorRejectsBadFindKeys(t *testing.T) {
	_, err := NewGenerator(Options{NumThreads: 1, FindKeys: 0, BeginsWith: "1", KeyPath: t.TempDir()})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewGenerator(Options{NumThreads: 1, FindKeys: MaxFindKeys + 1, BeginsWith: "1", KeyPath: t.TempDir()})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewGeneratorRejectsBadThreadCount(t *testing.T) {
	_, err := NewGenerator(Options{NumThreads: 0, FindKeys: 1, BeginsWith: "1", KeyPath: t.TempDir()})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewGeneratorRejectsOverlengthCombinedPattern(t *testing.T) {
	_, err := NewGenerator(Options{
		NumThreads: 1,
		FindKeys:   1,
		BeginsWith: strings.Repeat("A", 30),
		EndsWith:   strings.Repeat("z", 20),
		KeyPath:    t.TempDir(),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTrivialPrefixFindsOneKeyAndPersistsIt(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(Options{
		NumThreads:    1,
		FindKeys:      1,
		BeginsWith:    "1",
		CaseSensitive: true,
		KeyPath:       dir,
		CheckEvery:    4096,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := gen.Take(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(result.Base58PublicKey, "1"))
	require.Equal(t, int32(1), gen.NumFound())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, result.Base58PublicKey+".json", entries[0].Name())
}

func TestTwoCharPrefixFindsAllRequestedKeys(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(Options{
		NumThreads:    4,
		FindKeys:      3,
		BeginsWith:    "So",
		CaseSensitive: true,
		KeyPath:       dir,
		CheckEvery:    4096,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	found := 0
	for found < 3 {
		result, err := gen.Take(ctx)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(result.Base58PublicKey, "So"))
		found++
	}
	require.Equal(t, int32(3), gen.NumFound())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

func TestCaseInsensitiveSuffix(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(Options{
		NumThreads:    2,
		FindKeys:      1,
		EndsWith:      "end",
		CaseSensitive: false,
		KeyPath:       dir,
		CheckEvery:    4096,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := gen.Take(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(strings.ToLower(result.Base58PublicKey), "end"))
}

func TestBreakOutStopsSearchWithoutMatch(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(Options{
		NumThreads:    2,
		FindKeys:      1,
		BeginsWith:    "ZZZZ",
		CaseSensitive: true,
		KeyPath:       dir,
		CheckEvery:    4096,
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	gen.BreakOut()

	_, ok := gen.Poll(2 * time.Second)
	require.False(t, ok)
	require.Equal(t, int32(0), gen.NumFound())

	before := gen.NumSearched()
	time.Sleep(500 * time.Millisecond)
	after := gen.NumSearched()
	require.LessOrEqual(t, after-before, int64(4096*2))
}

func TestPersistedFileDecodesToTheMatchedPublicKey(t *testing.T) {
	dir := t.TempDir()
	gen, err := NewGenerator(Options{
		NumThreads: 1,
		FindKeys:   1,
		BeginsWith: "1",
		KeyPath:    dir,
		CheckEvery: 4096,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := gen.Take(ctx)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, result.Base58PublicKey+".json"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "[")

	var values []int
	require.NoError(t, json.Unmarshal(raw, &values))
	require.Len(t, values, ed25519.PrivateKeySize)
	secret := make([]byte, len(values))
	for i, v := range values {
		secret[i] = byte(v)
	}
	recovered := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize]).Public().(ed25519.PublicKey)
	require.Equal(t, result.PublicKey, recovered)
}
