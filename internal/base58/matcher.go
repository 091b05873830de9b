package base58

import "math/big"

// digitSet is a membership bitmask over the 58 possible digit values at one
// pattern position. A case-insensitive position accepts both of a letter's
// case siblings; every other position accepts exactly one value.
type digitSet uint64

func setOf(values ...int8) digitSet {
	var s digitSet
	for _, v := range values {
		s |= 1 << uint(v)
	}
	return s
}

func (s digitSet) has(v int8) bool {
	return s&(1<<uint(v)) != 0
}

// caseFold returns the lowercase ASCII form of an alphabet symbol, or the
// symbol itself for digits, which carry no case.
func caseFold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// digitSetFor returns the acceptable digit values for pattern character c.
// When caseSensitive is false, both case siblings of a letter are accepted.
func digitSetFor(c byte, caseSensitive bool) (digitSet, bool) {
	v := DigitValue(c)
	if v < 0 {
		return 0, false
	}
	if caseSensitive {
		return setOf(v), true
	}
	folded := caseFold(c)
	s := setOf(v)
	for i := 0; i < len(Alphabet); i++ {
		if int8(i) == v {
			continue
		}
		if caseFold(Alphabet[i]) == folded {
			s |= setOf(int8(i))
		}
	}
	return s, true
}

// Prefix is a compiled matcher deciding, without producing the full base58
// string, whether a 32-byte key's encoding begins with a pattern.
type Prefix struct {
	pattern string
	onesRun int // count of leading literal '1' characters in the pattern
	sets    []digitSet
}

// CompilePrefix validates pattern against the base58 alphabet and precomputes
// its matcher tables. pattern must be 1..44 base58 characters.
func CompilePrefix(pattern string, caseSensitive bool) (*Prefix, error) {
	sets, err := compileSets(pattern, caseSensitive)
	if err != nil {
		return nil, err
	}
	ones := 0
	for ones < len(pattern) && pattern[ones] == '1' {
		ones++
	}
	return &Prefix{pattern: pattern, onesRun: ones, sets: sets}, nil
}

// MaxLeadingZeros returns the number of leading zero bytes this pattern can
// tolerate in a candidate key before an automatic mismatch. A pattern made
// only of '1' characters is the exception: Matches accepts any longer run of
// leading zero bytes, since the encoding then starts with even more '1's.
func (p *Prefix) MaxLeadingZeros() int { return p.onesRun }

// Matches reports whether the base58 encoding of key begins with the
// compiled pattern.
func (p *Prefix) Matches(key []byte) bool {
	z := LeadingZeroBytes(key)
	if z > p.onesRun {
		return p.onesRun == len(p.sets)
	}
	tail := p.sets[z:]
	if len(tail) == 0 {
		return true
	}
	v := new(big.Int).SetBytes(key)
	d := digitCount(v)
	if len(tail) > d {
		return false
	}
	fifty8 := big.NewInt(58)
	rem := new(big.Int)
	digitBig := new(big.Int)
	for i, set := range tail {
		power := powers[d-1-i]
		rem.Div(v, power)
		digitBig.Mod(rem, fifty8)
		digit := int8(digitBig.Int64())
		if !set.has(digit) {
			return false
		}
	}
	return true
}

// Suffix is a compiled matcher deciding, without producing the full base58
// string, whether a 32-byte key's encoding ends with a pattern. It works by
// reducing the key modulo 58^k once and comparing trailing digits.
type Suffix struct {
	pattern string
	onesRun int // count of trailing literal '1' characters in the pattern
	sets    []digitSet
	modulus *big.Int
}

// CompileSuffix validates pattern and precomputes 58^len(pattern).
func CompileSuffix(pattern string, caseSensitive bool) (*Suffix, error) {
	sets, err := compileSets(pattern, caseSensitive)
	if err != nil {
		return nil, err
	}
	ones := 0
	for ones < len(pattern) && pattern[len(pattern)-1-ones] == '1' {
		ones++
	}
	return &Suffix{
		pattern: pattern,
		onesRun: ones,
		sets:    sets,
		modulus: powers[len(pattern)],
	}, nil
}

// MaxTrailingZeros returns the number of trailing zero bytes this pattern
// tolerates by construction; kept for parity with the prefix matcher and
// exposed on Subsequence, though the modulus-based comparison below already
// handles trailing zero bytes correctly without needing this bound.
func (s *Suffix) MaxTrailingZeros() int { return s.onesRun }

// Matches reports whether the base58 encoding of key ends with the compiled
// pattern.
func (s *Suffix) Matches(key []byte) bool {
	n := len(s.sets)
	if n == 0 {
		return true
	}
	v := new(big.Int).SetBytes(key)
	r := new(big.Int).Mod(v, s.modulus)
	fifty8 := big.NewInt(58)
	for i := n - 1; i >= 0; i-- {
		digit := int8(new(big.Int).Mod(r, fifty8).Int64())
		if !s.sets[i].has(digit) {
			return false
		}
		r.Div(r, fifty8)
	}
	return true
}

func compileSets(pattern string, caseSensitive bool) ([]digitSet, error) {
	if pattern == "" {
		return nil, nil
	}
	sets := make([]digitSet, len(pattern))
	for i := 0; i < len(pattern); i++ {
		s, ok := digitSetFor(pattern[i], caseSensitive)
		if !ok {
			return nil, &InvalidCharError{Char: rune(pattern[i])}
		}
		sets[i] = s
	}
	return sets, nil
}

// InvalidCharError reports a pattern character outside the base58 alphabet.
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return "base58: invalid pattern character " + string(e.Char)
}
