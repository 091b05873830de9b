package base58

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		key := randomKey(t)
		encoded := Encode(key)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, key, padTo32(decoded))
	}
}

func TestPrefixMatcherAgreesWithFullEncode(t *testing.T) {
	patterns := []string{"1", "So", "ABC", "111", "z"}
	for _, pattern := range patterns {
		matcher, err := CompilePrefix(pattern, true)
		require.NoError(t, err)
		for i := 0; i < 500; i++ {
			key := randomKey(t)
			want := strings.HasPrefix(Encode(key), pattern)
			got := matcher.Matches(key)
			require.Equalf(t, want, got, "pattern=%q key=%x encoded=%s", pattern, key, Encode(key))
		}
	}
}

func TestSuffixMatcherAgreesWithFullEncode(t *testing.T) {
	patterns := []string{"1", "end", "zzz", "A1"}
	for _, pattern := range patterns {
		matcher, err := CompileSuffix(pattern, true)
		require.NoError(t, err)
		for i := 0; i < 500; i++ {
			key := randomKey(t)
			want := strings.HasSuffix(Encode(key), pattern)
			got := matcher.Matches(key)
			require.Equalf(t, want, got, "pattern=%q key=%x encoded=%s", pattern, key, Encode(key))
		}
	}
}

func TestCaseInsensitiveMatching(t *testing.T) {
	matcher, err := CompilePrefix("So", false)
	require.NoError(t, err)
	for i := 0; i < 2000; i++ {
		key := randomKey(t)
		encoded := Encode(key)
		want := strings.HasPrefix(strings.ToLower(encoded), "so")
		got := matcher.Matches(key)
		require.Equal(t, want, got)
	}
}

func TestInvalidPatternCharacter(t *testing.T) {
	_, err := CompilePrefix("0", true)
	require.Error(t, err)
	_, err = CompileSuffix("O", true)
	require.Error(t, err)
}

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func padTo32(b []byte) []byte {
	if len(b) >= 32 {
		return b[len(b)-32:]
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}
