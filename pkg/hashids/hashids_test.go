package hashids

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSalt = "this is my salt"

func mustNew(t *testing.T, alphabet, salt string, minLength int) *HashID {
	t.Helper()
	h, err := New(alphabet, salt, minLength)
	require.NoError(t, err)
	return h
}

func TestNew_PreparedSets(t *testing.T) {
	h := mustNew(t, "", testSalt, 0)

	assert.Equal(t, "5N6y2rljDQak4xgzn8ZR1oKYLmJpEbVq3OBv9WwXPMe7", h.Alphabet())
	assert.Equal(t, "UHuhtcITCsFifS", h.Separators())
	assert.Equal(t, "AdG0", h.Guards())
	assert.Equal(t, testSalt, h.Salt())
	assert.Equal(t, 0, h.MinLength())
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name      string
		alphabet  string
		minLength int
		wantErr   error
	}{
		{name: "too short", alphabet: "ab", wantErr: ErrAlphabetTooShort},
		{name: "too short after dedup", alphabet: "aabbccddeeffgghhiijjkkll", wantErr: ErrAlphabetTooShort},
		{name: "space", alphabet: "abcdefghij klmnopqrstu", wantErr: ErrReservedCharacter},
		{name: "tab", alphabet: "abcdefghij\tklmnopqrstu", wantErr: ErrReservedCharacter},
		{name: "control character", alphabet: "abcdefghij\x00klmnopqrstu", wantErr: ErrReservedCharacter},
		{name: "negative min length", alphabet: DefaultAlphabet, minLength: -1, wantErr: ErrInvalidMinLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New(tt.alphabet, "", tt.minLength)
			require.Error(t, err)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestNew_DeduplicatesAlphabet(t *testing.T) {
	h := mustNew(t, "aabbccddeeffgghhiijjkkllmmnnooppqqrrsstt", "dup", 0)

	assert.Equal(t, "adkbqmglnepj", h.Alphabet())
	assert.Equal(t, "stfhic", h.Separators())
	assert.Equal(t, "ro", h.Guards())

	id, err := h.Encode(99, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, "pjnhdsj", id)
}

func TestNew_SmallWorkingAlphabetTakesGuardsFromSeparators(t *testing.T) {
	h := mustNew(t, "cfhistuCFHISTUab", "salt", 0)

	assert.Equal(t, "ba", h.Alphabet())
	assert.Equal(t, "iuUCFSThctfIH", h.Separators())
	assert.Equal(t, "s", h.Guards())

	id, err := h.Encode(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "bbuabUbb", id)

	numbers, err := h.Decode(id)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, numbers)
}

func TestNew_AlphabetWithoutSeparatorCharacters(t *testing.T) {
	h := mustNew(t, "abcdefghijklmnop", "x", 0)

	assert.Equal(t, "dpgjlmkoean", h.Alphabet())
	assert.Equal(t, "fhic", h.Separators())
	assert.Equal(t, "b", h.Guards())

	id, err := h.Encode(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "kjheio", id)
}

func TestEncode_KnownIDs(t *testing.T) {
	tests := []struct {
		name      string
		salt      string
		minLength int
		numbers   []uint64
		want      string
	}{
		{name: "reference", salt: testSalt, numbers: []uint64{1, 2, 3}, want: "laHquq"},
		{name: "zero", salt: testSalt, numbers: []uint64{0}, want: "5x"},
		{name: "repeated", salt: testSalt, numbers: []uint64{5, 5}, want: "awcR"},
		{name: "single", salt: testSalt, numbers: []uint64{12345}, want: "NkK9"},
		{name: "no salt", numbers: []uint64{1, 2, 3}, want: "o2fXhV"},
		{name: "max uint64", salt: testSalt, numbers: []uint64{1<<64 - 1}, want: "zXVjmzBamYlqX"},
		{name: "max int64", salt: testSalt, numbers: []uint64{1<<63 - 1}, want: "jvNx4BjM5KYjv"},
		{name: "min length 6 is already met", salt: testSalt, minLength: 6, numbers: []uint64{1, 2, 3}, want: "laHquq"},
		{name: "one guard", salt: testSalt, minLength: 7, numbers: []uint64{1, 2, 3}, want: "GlaHquq"},
		{name: "two guards and padding", salt: testSalt, minLength: 10, numbers: []uint64{1, 2, 3}, want: "LGlaHquq06"},
		{name: "padding", salt: testSalt, minLength: 25, numbers: []uint64{1, 2, 3}, want: "VgxzNb59LGlaHquq06DmlyMX3"},
		{name: "padding twice", salt: testSalt, minLength: 60, numbers: []uint64{1, 2, 3},
			want: "OnaBBarwE2q487KZPVgxzNb59LGlaHquq06DmlyMX3okOQWRneYJpj1vWpK2"},
		{name: "min length 8", salt: testSalt, minLength: 8, numbers: []uint64{1}, want: "gB0NV05e"},
		{name: "min length 30", salt: testSalt, minLength: 30, numbers: []uint64{45, 434, 1313, 99},
			want: "woQ2vqjnG7nnhzEsDkiYadKa3O71br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustNew(t, "", tt.salt, tt.minLength)

			id, err := h.Encode(tt.numbers...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)

			numbers, err := h.Decode(id)
			require.NoError(t, err)
			assert.Equal(t, tt.numbers, numbers)
		})
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	h := mustNew(t, "", testSalt, 0)

	id, err := h.Encode()
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.True(t, IsEncodeError(err))
	assert.Empty(t, id)
}

func TestEncode_UnicodeAlphabet(t *testing.T) {
	h := mustNew(t, "αβγδεζηθικλμνξοπρστυφχψω", "ünï", 0)

	id, err := h.Encode(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "μθβκγο", id)

	numbers, err := h.Decode(id)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, numbers)
}

func TestEncode_Properties(t *testing.T) {
	configs := []struct {
		alphabet  string
		salt      string
		minLength int
	}{
		{alphabet: "", salt: ""},
		{alphabet: "", salt: testSalt, minLength: 20},
		{alphabet: "0123456789abcdef", salt: "hex", minLength: 3},
		{alphabet: "cfhistuCFHISTUab", salt: "salt", minLength: 10},
		{alphabet: "!#$%&()*+,-./:;<=>?@[]^_{|}~0123", salt: "symbols"},
	}
	inputs := [][]uint64{
		{0},
		{1},
		{0, 0, 0},
		{7, 42, 1000, 65535},
		{1<<64 - 1, 0, 1<<32 + 5},
		{123456789, 987654321},
	}

	for _, c := range configs {
		h := mustNew(t, c.alphabet, c.salt, c.minLength)
		allowed := h.Alphabet() + h.Separators() + h.Guards()

		for _, numbers := range inputs {
			id, err := h.Encode(numbers...)
			require.NoError(t, err)

			again, err := h.Encode(numbers...)
			require.NoError(t, err)
			assert.Equal(t, id, again, "encode must be deterministic")

			assert.GreaterOrEqual(t, len([]rune(id)), c.minLength)
			for _, r := range id {
				assert.True(t, strings.ContainsRune(allowed, r), "unexpected character %q in %q", r, id)
			}

			decoded, err := h.Decode(id)
			require.NoError(t, err, "decode %q", id)
			assert.Equal(t, numbers, decoded)
		}
	}
}

func TestEncode_MinLengthIsExact(t *testing.T) {
	for minLength := 0; minLength <= 80; minLength++ {
		h := mustNew(t, "", testSalt, minLength)
		id, err := h.Encode(42)
		require.NoError(t, err)

		// "eP" is the unpadded id for 42.
		assert.Len(t, id, max(minLength, 2))
		numbers, err := h.Decode(id)
		require.NoError(t, err)
		assert.Equal(t, []uint64{42}, numbers)
	}
}

func TestDecode_Errors(t *testing.T) {
	h := mustNew(t, "", testSalt, 0)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "empty", id: "", wantErr: ErrNotOurs},
		{name: "unknown character", id: "la*quq", wantErr: ErrInvalidCharacter},
		{name: "tampered", id: "laHquu", wantErr: ErrNotOurs},
		{name: "only guards", id: "AA", wantErr: ErrNotOurs},
		{name: "overflow", id: "5" + strings.Repeat("N", 40), wantErr: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numbers, err := h.Decode(tt.id)
			require.Error(t, err)
			assert.Nil(t, numbers)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsDecodeError(err))
		})
	}
}

func TestDecode_OtherConfiguration(t *testing.T) {
	mine := mustNew(t, "", testSalt, 0)
	other := mustNew(t, "", "another salt", 0)
	otherAlphabet := mustNew(t, "abcdefghijklmnopqrstuvwxyz", testSalt, 0)

	for _, numbers := range [][]uint64{{1, 2, 3}, {0}, {987654321}, {5, 5, 5, 5}} {
		id, err := other.Encode(numbers...)
		require.NoError(t, err)
		decoded, err := mine.Decode(id)
		assert.True(t, IsDecodeError(err), "id %q from another salt decoded to %v", id, decoded)

		id, err = mine.Encode(numbers...)
		require.NoError(t, err)
		decoded, err = otherAlphabet.Decode(id)
		assert.True(t, IsDecodeError(err), "id %q from another alphabet decoded to %v", id, decoded)
	}
}

func TestDecode_GuardedID(t *testing.T) {
	h := mustNew(t, "", testSalt, 10)

	numbers, err := h.Decode("LGlaHquq06")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, numbers)

	unpadded := mustNew(t, "", testSalt, 0)
	_, err = unpadded.Decode("LGlaHquq06")
	assert.ErrorIs(t, err, ErrNotOurs)
}

func TestHashID_ConcurrentUse(t *testing.T) {
	h := mustNew(t, "", testSalt, 12)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(n uint64) {
			defer wg.Done()
			id, err := h.Encode(n, n*3)
			if err != nil {
				errs <- err
				return
			}
			if _, err := h.Decode(id); err != nil {
				errs <- err
			}
		}(uint64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, "5N6y2rljDQak4xgzn8ZR1oKYLmJpEbVq3OBv9WwXPMe7", mustNew(t, "", testSalt, 0).Alphabet())
}
