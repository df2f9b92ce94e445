package hashids

import (
	"fmt"
	"math/bits"
	"slices"
)

// toDigits writes n in base len(alphabet), most significant digit first.
func toDigits(n uint64, alphabet []rune) []rune {
	base := uint64(len(alphabet))
	digits := make([]rune, 0, 12)
	for {
		digits = append(digits, alphabet[n%base])
		n /= base
		if n == 0 {
			break
		}
	}
	slices.Reverse(digits)
	return digits
}

// fromDigits is the inverse of toDigits.
func fromDigits(digits, alphabet []rune) (uint64, error) {
	base := uint64(len(alphabet))
	var n uint64
	for _, r := range digits {
		idx := slices.Index(alphabet, r)
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
		hi, lo := bits.Mul64(n, base)
		sum, carry := bits.Add64(lo, uint64(idx), 0)
		if hi != 0 || carry != 0 {
			return 0, ErrOverflow
		}
		n = sum
	}
	return n, nil
}
