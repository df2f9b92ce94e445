package codec

import (
	"fmt"
	"strings"

	"github.com/weiawesome/wes-io-live/hashid-service/pkg/hashids"
)

var _ Codec = (*HashIDCodec)(nil)

// HashIDCodec encodes numbers with one hashids configuration.
type HashIDCodec struct {
	h *hashids.HashID
}

// NewHashIDCodec creates a HashIDCodec. An empty alphabet selects
// hashids.DefaultAlphabet.
func NewHashIDCodec(alphabet, salt string, minLength int) (*HashIDCodec, error) {
	h, err := hashids.New(alphabet, salt, minLength)
	if err != nil {
		return nil, fmt.Errorf("failed to init hashids: %w", err)
	}
	return &HashIDCodec{h: h}, nil
}

func (c *HashIDCodec) Encode(numbers []uint64) (string, error) {
	return c.h.Encode(numbers...)
}

func (c *HashIDCodec) EncodeBatch(numbers []uint64) ([]string, error) {
	if len(numbers) < 1 || len(numbers) > MaxBatch {
		return nil, fmt.Errorf("%w, got %d", ErrBatchSize, len(numbers))
	}

	ids := make([]string, 0, len(numbers))
	for _, n := range numbers {
		id, err := c.h.Encode(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *HashIDCodec) Decode(id string) ([]uint64, error) {
	return c.h.Decode(id)
}

func (c *HashIDCodec) Validate(id string) (bool, string) {
	if _, err := c.h.Decode(id); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (c *HashIDCodec) Parse(id string) (*ParseResult, error) {
	numbers, err := c.h.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hashid: %w", err)
	}

	// Only padded ids carry guards, and the payload follows the first one.
	runes := []rune(id)
	guards := c.h.Guards()
	lottery, guarded := runes[0], false
	for i, r := range runes {
		if strings.ContainsRune(guards, r) && i+1 < len(runes) {
			lottery, guarded = runes[i+1], true
			break
		}
	}

	return &ParseResult{
		Numbers:   numbers,
		IDLength:  int32(len(runes)),
		Lottery:   string(lottery),
		Guarded:   guarded,
		MinLength: int32(c.h.MinLength()),
	}, nil
}
