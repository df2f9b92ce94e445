package hashids

import (
	"fmt"
	"strconv"
	"strings"
)

// hexChunk is the number of hex digits packed into each encoded number.
const hexChunk = 12

// EncodeHex encodes a hex string such as a Mongo ObjectId. The string is cut
// into chunks of 12 digits and each chunk is encoded as the number "1"+chunk,
// so leading zeros survive the round trip.
func (h *HashID) EncodeHex(hex string) (string, error) {
	if hex == "" {
		return "", fmt.Errorf("%w: empty string", ErrInvalidHex)
	}

	numbers := make([]uint64, 0, (len(hex)+hexChunk-1)/hexChunk)
	for i := 0; i < len(hex); i += hexChunk {
		chunk := hex[i:min(i+hexChunk, len(hex))]
		n, err := strconv.ParseUint("1"+chunk, 16, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidHex, chunk)
		}
		numbers = append(numbers, n)
	}
	return h.Encode(numbers...)
}

// DecodeHex reverses EncodeHex. Hex digits come back in lower case.
func (h *HashID) DecodeHex(id string) (string, error) {
	numbers, err := h.Decode(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range numbers {
		s := strconv.FormatUint(n, 16)
		if len(s) < 2 || s[0] != '1' {
			return "", fmt.Errorf("%w: %q does not hold hex data", ErrInvalidHex, id)
		}
		b.WriteString(s[1:])
	}
	return b.String(), nil
}
