// Package pattern compiles user-supplied base58 patterns into immutable
// Subsequence matchers usable concurrently by many workers.
package pattern

import (
	"errors"
	"fmt"

	"github.com/sava-labs/solanavanity/internal/base58"
)

// Anchor identifies which end of the base58-encoded public key a pattern is
// matched against.
type Anchor int

const (
	Prefix Anchor = iota
	Suffix
)

func (a Anchor) String() string {
	if a == Suffix {
		return "suffix"
	}
	return "prefix"
}

// MaxPatternLength is the longest base58 string a 32-byte key can ever
// encode to, and therefore the longest pattern that could ever match.
const MaxPatternLength = 44

// Subsequence is an immutable compiled pattern anchored at a prefix or
// suffix. Values are safe for concurrent use by many workers; nothing about
// a Subsequence mutates after Compile returns.
type Subsequence struct {
	Raw           string
	CaseSensitive bool
	Anchor        Anchor

	prefix *base58.Prefix
	suffix *base58.Suffix
}

// Compile validates raw against the base58 alphabet, its length bound, and
// precompiles the matcher tables for the given anchor.
func Compile(raw string, anchor Anchor, caseSensitive bool) (*Subsequence, error) {
	if len(raw) == 0 || len(raw) > MaxPatternLength {
		return nil, fmt.Errorf("pattern: length must be 1..%d, got %d", MaxPatternLength, len(raw))
	}
	sub := &Subsequence{Raw: raw, CaseSensitive: caseSensitive, Anchor: anchor}
	var err error
	switch anchor {
	case Prefix:
		sub.prefix, err = base58.CompilePrefix(raw, caseSensitive)
	case Suffix:
		sub.suffix, err = base58.CompileSuffix(raw, caseSensitive)
	default:
		return nil, errors.New("pattern: unknown anchor")
	}
	if err != nil {
		return nil, fmt.Errorf("pattern: %w", err)
	}
	return sub, nil
}

// MaxPubKeyLeadingZeros returns the number of leading zero bytes a prefix
// Subsequence tolerates before an automatic mismatch; a prefix made only of
// '1' characters accepts any longer run too. Zero for a suffix Subsequence.
func (s *Subsequence) MaxPubKeyLeadingZeros() int {
	if s.prefix == nil {
		return 0
	}
	return s.prefix.MaxLeadingZeros()
}

// MaxPubKeyTrailingZeros returns the number of trailing zero bytes a suffix
// Subsequence tolerates. Zero for a prefix Subsequence.
func (s *Subsequence) MaxPubKeyTrailingZeros() int {
	if s.suffix == nil {
		return 0
	}
	return s.suffix.MaxTrailingZeros()
}

// MatchesPrefix reports whether pub's base58 encoding begins with this
// pattern. It always returns true for a suffix-anchored Subsequence.
func (s *Subsequence) MatchesPrefix(pub []byte) bool {
	if s.prefix == nil {
		return true
	}
	return s.prefix.Matches(pub)
}

// MatchesSuffix reports whether pub's base58 encoding ends with this
// pattern. It always returns true for a prefix-anchored Subsequence.
func (s *Subsequence) MatchesSuffix(pub []byte) bool {
	if s.suffix == nil {
		return true
	}
	return s.suffix.Matches(pub)
}

// Matches reports whether pub satisfies this Subsequence at its configured
// anchor.
func (s *Subsequence) Matches(pub []byte) bool {
	if s.Anchor == Suffix {
		return s.MatchesSuffix(pub)
	}
	return s.MatchesPrefix(pub)
}

// ValidateCombined rejects a prefix and suffix whose combined length leaves
// no room in a 44-character base58 key, at construction rather than at
// runtime once every candidate would silently fail to match.
func ValidateCombined(beginsWith, endsWith *Subsequence) error {
	if beginsWith == nil || endsWith == nil {
		return nil
	}
	if len(beginsWith.Raw)+len(endsWith.Raw) > MaxPatternLength {
		return fmt.Errorf("pattern: combined prefix %q and suffix %q exceed %d characters",
			beginsWith.Raw, endsWith.Raw, MaxPatternLength)
	}
	return nil
}
