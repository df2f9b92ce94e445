package hashids

import (
	"fmt"
	"math"
	"slices"
	"unicode"
)

const (
	// DefaultAlphabet is used when New is given an empty alphabet.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

	// MinAlphabetLength is the number of distinct characters an alphabet needs.
	MinAlphabetLength = 16

	sepDiv   = 3.5
	guardDiv = 12.0
)

// referenceSeparators must stay byte-for-byte identical across implementations.
var referenceSeparators = []rune("cfhistuCFHISTU")

// charsets is the alphabet split into its three disjoint roles.
type charsets struct {
	alphabet   []rune
	separators []rune
	guards     []rune
}

func prepare(raw, salt []rune) (*charsets, error) {
	unique := make([]rune, 0, len(raw))
	for _, r := range raw {
		if isReserved(r) {
			return nil, fmt.Errorf("%w: %q", ErrReservedCharacter, r)
		}
		if !slices.Contains(unique, r) {
			unique = append(unique, r)
		}
	}
	if len(unique) < MinAlphabetLength {
		return nil, fmt.Errorf("%w: %d distinct characters, need at least %d",
			ErrAlphabetTooShort, len(unique), MinAlphabetLength)
	}

	seps := make([]rune, 0, len(referenceSeparators))
	for _, r := range referenceSeparators {
		if slices.Contains(unique, r) {
			seps = append(seps, r)
		}
	}
	alphabet := make([]rune, 0, len(unique))
	for _, r := range unique {
		if !slices.Contains(seps, r) {
			alphabet = append(alphabet, r)
		}
	}
	seps = shuffle(seps, salt)

	if len(seps) == 0 || float64(len(alphabet))/float64(len(seps)) > sepDiv {
		want := int(math.Ceil(float64(len(alphabet)) / sepDiv))
		if want == 1 {
			want = 2
		}
		if want > len(seps) {
			diff := want - len(seps)
			seps = append(seps, alphabet[:diff]...)
			alphabet = alphabet[diff:]
		} else {
			seps = seps[:want]
		}
	}
	alphabet = shuffle(alphabet, salt)

	guardCount := int(math.Ceil(float64(len(alphabet)) / guardDiv))
	var guards []rune
	if len(alphabet) < 3 {
		guards = seps[:guardCount]
		seps = seps[guardCount:]
	} else {
		guards = alphabet[:guardCount]
		alphabet = alphabet[guardCount:]
	}

	return &charsets{
		alphabet:   slices.Clone(alphabet),
		separators: slices.Clone(seps),
		guards:     slices.Clone(guards),
	}, nil
}

// isReserved reports characters an alphabet may not contain.
func isReserved(r rune) bool {
	return unicode.IsSpace(r) || !unicode.IsPrint(r)
}
