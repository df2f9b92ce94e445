package hashids

import (
	"fmt"
	"math"
)

// EncodeInt64 is Encode for signed numbers. Negative numbers are rejected.
func (h *HashID) EncodeInt64(numbers ...int64) (string, error) {
	converted := make([]uint64, len(numbers))
	for i, n := range numbers {
		if n < 0 {
			return "", fmt.Errorf("%w: %d at position %d", ErrNegativeNumber, n, i)
		}
		converted[i] = uint64(n)
	}
	return h.Encode(converted...)
}

// DecodeInt64 is Decode for ids holding numbers that fit an int64.
func (h *HashID) DecodeInt64(id string) ([]int64, error) {
	numbers, err := h.Decode(id)
	if err != nil {
		return nil, err
	}

	converted := make([]int64, len(numbers))
	for i, n := range numbers {
		if n > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d does not fit an int64", ErrOverflow, n)
		}
		converted[i] = int64(n)
	}
	return converted, nil
}
