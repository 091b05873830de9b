// Package base58 provides the Solana account-key alphabet, canonical
// encode/decode, and a matcher that can decide whether a 32-byte public key's
// base58 encoding satisfies a prefix or suffix pattern without producing the
// full base58 string.
package base58

import (
	"math/big"

	mrtron "github.com/mr-tron/base58"
)

// Alphabet is the Bitcoin/Solana base58 alphabet: 58 symbols, value 0 = '1'.
// It excludes the visually ambiguous characters 0, O, I, l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var digitValue [256]int8

func init() {
	for i := range digitValue {
		digitValue[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		digitValue[Alphabet[i]] = int8(i)
	}
}

// powers[i] holds 58^i, precomputed once so the hot matching path never has
// to compute a power of 58 on the fly.
var powers [46]*big.Int

func init() {
	powers[0] = big.NewInt(1)
	base := big.NewInt(58)
	for i := 1; i < len(powers); i++ {
		powers[i] = new(big.Int).Mul(powers[i-1], base)
	}
}

// DigitValue returns the base58 digit value of c, or -1 if c is not a member
// of the alphabet.
func DigitValue(c byte) int8 {
	return digitValue[c]
}

// IsValidChar reports whether c is a member of the base58 alphabet.
func IsValidChar(c byte) bool {
	return digitValue[c] >= 0
}

// Encode returns the canonical base58 encoding of key. This is only called
// on the emission path for an actual match; the hot loop never calls it.
func Encode(key []byte) string {
	return mrtron.Encode(key)
}

// Decode returns the bytes encoded by s.
func Decode(s string) ([]byte, error) {
	return mrtron.Decode(s)
}

// LeadingZeroBytes returns the count of leading 0x00 bytes in key. Each one
// becomes a leading '1' character once key is base58 encoded.
func LeadingZeroBytes(key []byte) int {
	n := 0
	for _, b := range key {
		if b != 0 {
			break
		}
		n++
	}
	return n
}

// digitCount returns the minimal number of base58 digits needed to represent
// v, i.e. the smallest d such that v < 58^d. v == 0 yields 1.
func digitCount(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	d := 1
	for d < len(powers) && powers[d].Cmp(v) <= 0 {
		d++
	}
	return d
}
