package hashids

import "errors"

// Configuration errors.
var (
	ErrAlphabetTooShort  = errors.New("hashids: alphabet too short")
	ErrReservedCharacter = errors.New("hashids: alphabet contains a reserved character")
	ErrInvalidMinLength  = errors.New("hashids: min length must not be negative")
)

// Encoding errors.
var (
	ErrEmptyInput     = errors.New("hashids: nothing to encode")
	ErrNegativeNumber = errors.New("hashids: negative numbers are not supported")
	ErrInvalidHex     = errors.New("hashids: invalid hex string")
)

// Decoding errors.
var (
	ErrInvalidCharacter = errors.New("hashids: character not in alphabet")
	ErrOverflow         = errors.New("hashids: decoded number overflows")
	ErrNotOurs          = errors.New("hashids: id was not produced by this configuration")
)

// IsConfigError reports whether err was raised while preparing a configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrAlphabetTooShort) ||
		errors.Is(err, ErrReservedCharacter) ||
		errors.Is(err, ErrInvalidMinLength)
}

// IsEncodeError reports whether err was raised by one of the Encode methods.
func IsEncodeError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrNegativeNumber) ||
		errors.Is(err, ErrInvalidHex)
}

// IsDecodeError reports whether err means an id could not be decoded.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidCharacter) ||
		errors.Is(err, ErrOverflow) ||
		errors.Is(err, ErrNotOurs)
}
