package codec

import (
	"errors"
	"fmt"
	"sort"
)

// MaxBatch is the largest number of ids EncodeBatch produces in one call.
const MaxBatch = 1000

var (
	ErrUnknownNamespace = errors.New("unknown namespace")
	ErrBatchSize        = fmt.Errorf("batch size must be between 1 and %d", MaxBatch)
)

// Codec defines the interface for encoding numbers to ids, decoding,
// validating and parsing them.
type Codec interface {
	Encode(numbers []uint64) (string, error)
	EncodeBatch(numbers []uint64) ([]string, error) // one id per number
	Decode(id string) ([]uint64, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult describes how an id is put together.
type ParseResult struct {
	Numbers   []uint64
	IDLength  int32
	Lottery   string // seed character every block is shuffled with
	Guarded   bool   // id was padded up to the minimum length
	MinLength int32
}

// Namespaces maps a namespace name to its codec.
type Namespaces map[string]Codec

// Lookup returns the codec registered under name.
func (n Namespaces) Lookup(name string) (Codec, error) {
	c, ok := n[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, name)
	}
	return c, nil
}

// Names returns the namespace names in sorted order.
func (n Namespaces) Names() []string {
	names := make([]string, 0, len(n))
	for name := range n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
