package hashids

import (
	"math"
	"math/rand"
	"testing"

	gohashids "github.com/speps/go-hashids/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ids must match an independent implementation of the same scheme.
func TestCompatibleWithGoHashids(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, c := range []struct {
		salt      string
		minLength int
	}{
		{salt: ""},
		{salt: testSalt},
		{salt: "pepper", minLength: 12},
		{salt: "a much longer salt than the alphabet would ever need to see", minLength: 40},
	} {
		data := gohashids.NewData()
		data.Alphabet = DefaultAlphabet
		data.Salt = c.salt
		data.MinLength = c.minLength
		ref, err := gohashids.NewWithData(data)
		require.NoError(t, err)

		h := mustNew(t, DefaultAlphabet, c.salt, c.minLength)

		for i := 0; i < 200; i++ {
			count := 1 + rng.Intn(5)
			signed := make([]int64, count)
			for j := range signed {
				switch rng.Intn(3) {
				case 0:
					signed[j] = rng.Int63n(1000)
				case 1:
					signed[j] = rng.Int63n(math.MaxInt32)
				default:
					signed[j] = rng.Int63()
				}
			}

			want, err := ref.EncodeInt64(signed)
			require.NoError(t, err)

			got, err := h.EncodeInt64(signed...)
			require.NoError(t, err)
			assert.Equal(t, want, got, "numbers %v salt %q", signed, c.salt)

			decoded, err := h.DecodeInt64(want)
			require.NoError(t, err)
			assert.Equal(t, signed, decoded)
		}
	}
}
