package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileRejectsBadLength(t *testing.T) {
	_, err := Compile("", Prefix, true)
	require.Error(t, err)

	long := make([]byte, MaxPatternLength+1)
	for i := range long {
		long[i] = '1'
	}
	_, err = Compile(string(long), Prefix, true)
	require.Error(t, err)
}

func TestCompileRejectsInvalidAlphabet(t *testing.T) {
	_, err := Compile("0OIl", Prefix, true)
	require.Error(t, err)
}

func TestValidateCombinedRejectsOverlength(t *testing.T) {
	begins, err := Compile("SoL", Prefix, true)
	require.NoError(t, err)
	ends, err := Compile(make44Chars(42), Suffix, true)
	require.NoError(t, err)

	err = ValidateCombined(begins, ends)
	require.Error(t, err)
}

func TestValidateCombinedAcceptsWithinBudget(t *testing.T) {
	begins, err := Compile("SoL", Prefix, true)
	require.NoError(t, err)
	ends, err := Compile("ana", Suffix, true)
	require.NoError(t, err)

	require.NoError(t, ValidateCombined(begins, ends))
}

func make44Chars(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'z'
	}
	return string(b)
}
