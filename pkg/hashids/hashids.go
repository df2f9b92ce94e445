// Package hashids turns sequences of non-negative integers into short,
// non-sequential ids and back again.
//
// The output is obfuscation, not encryption: anyone holding the alphabet and
// salt can decode an id. A HashID is immutable once built and safe for
// concurrent use.
package hashids

import (
	"fmt"
	"slices"
)

// HashID holds a prepared alphabet, salt and minimum id length.
type HashID struct {
	alphabet   []rune
	separators []rune
	guards     []rune
	salt       []rune
	minLength  int
}

// New prepares a HashID. An empty alphabet selects DefaultAlphabet.
// Duplicate alphabet characters are dropped, keeping the first occurrence.
func New(alphabet, salt string, minLength int) (*HashID, error) {
	if minLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinLength, minLength)
	}
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}

	saltRunes := []rune(salt)
	sets, err := prepare([]rune(alphabet), saltRunes)
	if err != nil {
		return nil, err
	}

	return &HashID{
		alphabet:   sets.alphabet,
		separators: sets.separators,
		guards:     sets.guards,
		salt:       saltRunes,
		minLength:  minLength,
	}, nil
}

// Alphabet returns the working alphabet used for digits.
func (h *HashID) Alphabet() string { return string(h.alphabet) }

// Separators returns the characters placed between numbers.
func (h *HashID) Separators() string { return string(h.separators) }

// Guards returns the characters used to pad short ids.
func (h *HashID) Guards() string { return string(h.guards) }

// Salt returns the configured salt.
func (h *HashID) Salt() string { return string(h.salt) }

// MinLength returns the minimum id length.
func (h *HashID) MinLength() int { return h.minLength }

// Encode returns the id for numbers. The same HashID and numbers always give
// the same id.
func (h *HashID) Encode(numbers ...uint64) (string, error) {
	if len(numbers) == 0 {
		return "", ErrEmptyInput
	}

	alphabet := slices.Clone(h.alphabet)

	var seed uint64
	for i, n := range numbers {
		seed += n % uint64(i+100)
	}

	lottery := alphabet[seed%uint64(len(alphabet))]
	result := make([]rune, 0, max(h.minLength, 1+len(numbers)*14))
	result = append(result, lottery)

	key := make([]rune, 0, 1+len(h.salt)+len(alphabet))
	for i, n := range numbers {
		key = h.blockKey(key, lottery, alphabet)
		shuffleInPlace(alphabet, key[:len(alphabet)])

		block := toDigits(n, alphabet)
		result = append(result, block...)

		if i+1 < len(numbers) {
			n %= uint64(block[0]) + uint64(i)
			result = append(result, h.separators[n%uint64(len(h.separators))])
		}
	}

	if len(result) < h.minLength {
		g := (seed + uint64(result[0])) % uint64(len(h.guards))
		result = append([]rune{h.guards[g]}, result...)

		if len(result) < h.minLength {
			g = (seed + uint64(result[2])) % uint64(len(h.guards))
			result = append(result, h.guards[g])
		}
	}

	half := len(alphabet) / 2
	for len(result) < h.minLength {
		shuffleInPlace(alphabet, slices.Clone(alphabet))

		padded := make([]rune, 0, len(result)+len(alphabet))
		padded = append(padded, alphabet[half:]...)
		padded = append(padded, result...)
		padded = append(padded, alphabet[:half]...)
		result = padded

		if excess := len(result) - h.minLength; excess > 0 {
			result = result[excess/2 : excess/2+h.minLength]
		}
	}

	return string(result), nil
}

// Decode returns the numbers id was built from. The result is re-encoded and
// compared with id, so an id from another configuration fails with ErrNotOurs
// or ErrInvalidCharacter instead of yielding wrong numbers.
func (h *HashID) Decode(id string) ([]uint64, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotOurs)
	}

	numbers, err := h.unhash([]rune(id))
	if err != nil {
		return nil, err
	}

	check, err := h.Encode(numbers...)
	if err != nil || check != id {
		return nil, fmt.Errorf("%w: %q", ErrNotOurs, id)
	}
	return numbers, nil
}

func (h *HashID) unhash(id []rune) ([]uint64, error) {
	// Guards are only stripped when the split looks like a padded id; any
	// other shape is decoded as is and left to the round-trip check.
	parts := splitRunes(id, h.guards)
	payload := parts[0]
	if len(parts) == 2 || len(parts) == 3 {
		payload = parts[1]
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: no lottery character", ErrNotOurs)
	}

	lottery := payload[0]
	blocks := splitRunes(payload[1:], h.separators)

	alphabet := slices.Clone(h.alphabet)
	key := make([]rune, 0, 1+len(h.salt)+len(alphabet))
	numbers := make([]uint64, 0, len(blocks))
	for _, block := range blocks {
		key = h.blockKey(key, lottery, alphabet)
		shuffleInPlace(alphabet, key[:len(alphabet)])

		n, err := fromDigits(block, alphabet)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// blockKey fills buf with lottery + salt + alphabet, the shuffle key of one block.
func (h *HashID) blockKey(buf []rune, lottery rune, alphabet []rune) []rune {
	buf = append(buf[:0], lottery)
	buf = append(buf, h.salt...)
	return append(buf, alphabet...)
}

// splitRunes splits s at every rune in delims, keeping empty fields.
func splitRunes(s, delims []rune) [][]rune {
	parts := make([][]rune, 0, 4)
	start := 0
	for i, r := range s {
		if slices.Contains(delims, r) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
