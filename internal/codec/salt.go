package codec

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/weiawesome/wes-io-live/hashid-service/pkg/hashids"
)

const (
	MinSaltSize = 8
	MaxSaltSize = 256
)

var ErrSaltSize = fmt.Errorf("salt size must be between %d and %d", MinSaltSize, MaxSaltSize)

// SaltGenerator mints random salts for provisioning new namespaces.
type SaltGenerator struct {
	size int
}

// NewSaltGenerator creates a SaltGenerator whose default salt length is size.
func NewSaltGenerator(size int) (*SaltGenerator, error) {
	if err := checkSaltSize(size); err != nil {
		return nil, err
	}
	return &SaltGenerator{size: size}, nil
}

// Generate returns a random salt of the given length, or of the default
// length when size is 0.
func (g *SaltGenerator) Generate(size int) (string, error) {
	if size == 0 {
		size = g.size
	}
	if err := checkSaltSize(size); err != nil {
		return "", err
	}

	salt, err := gonanoid.Generate(hashids.DefaultAlphabet, size)
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

func checkSaltSize(size int) error {
	if size < MinSaltSize || size > MaxSaltSize {
		return fmt.Errorf("%w, got %d", ErrSaltSize, size)
	}
	return nil
}
