package crypto

import "errors"

var (
	ErrInvalidMode = errors.New("crypto: mode must be encrypt or decrypt")

	ErrEmptyKey        = errors.New("crypto: key cannot be empty")
	ErrEmptyAlphabet   = errors.New("crypto: alphabet cannot be empty")
	ErrDuplicateSymbol = errors.New("crypto: alphabet contains a duplicate symbol")
	ErrCasedSymbol     = errors.New("crypto: alphabet symbol must be lower case")
	ErrNoKey           = errors.New("crypto: no key configured")
)

// IsConfigError reports whether err comes from a degenerate key or alphabet.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrEmptyKey) ||
		errors.Is(err, ErrEmptyAlphabet) ||
		errors.Is(err, ErrDuplicateSymbol) ||
		errors.Is(err, ErrCasedSymbol) ||
		errors.Is(err, ErrNoKey)
}
