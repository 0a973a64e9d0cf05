// Package crypto contains Vigenère Encryption and Decryption over a configurable alphabet
package crypto

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// DefaultAlphabet is the Norwegian alphabet in lower case.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzæøå"

// Translator applies a repeating sequence of Caesar shifts to messages.
// It is safe for concurrent use: configuration calls take the write lock and
// a Translate call works on one snapshot of the tables for its whole pass.
type Translator struct {
	mu       sync.RWMutex
	alphabet []rune
	tables   []ShiftTable
}

// NewTranslator builds a Translator for key over DefaultAlphabet.
func NewTranslator(key string) (*Translator, error) {
	return NewTranslatorWithAlphabet(key, DefaultAlphabet)
}

// NewTranslatorWithAlphabet builds a Translator for key over alphabet.
func NewTranslatorWithAlphabet(key, alphabet string) (*Translator, error) {
	t := &Translator{}
	if err := t.SetAlphabet(alphabet); err != nil {
		return nil, err
	}
	if err := t.SetKey(key); err != nil {
		return nil, err
	}
	return t, nil
}

// SetKey derives the shift tables for key against the current alphabet and
// replaces the previous tables.
func (t *Translator) SetKey(key string) error {
	_, err := t.ApplyKey(key)
	return err
}

// ApplyKey does the same as SetKey and returns the shift sequence it
// installed.
func (t *Translator) ApplyKey(key string) ([]int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	shifts, err := ParseKey(key, t.alphabet)
	if err != nil {
		return nil, err
	}

	tables := make([]ShiftTable, len(shifts))
	for i, s := range shifts {
		tables[i] = NewShiftTable(t.alphabet, s)
	}
	t.tables = tables
	return shifts, nil
}

// SetAlphabet replaces the alphabet. The shift tables are left untouched, so
// SetKey must be called again for them to follow the new alphabet.
func (t *Translator) SetAlphabet(alphabet string) error {
	if err := ValidateAlphabet(alphabet); err != nil {
		return err
	}

	t.mu.Lock()
	t.alphabet = []rune(alphabet)
	t.mu.Unlock()
	return nil
}

func (t *Translator) Alphabet() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return string(t.alphabet)
}

// Shifts returns the shift sequence of the current tables.
func (t *Translator) Shifts() []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	shifts := make([]int, len(t.tables))
	for i, table := range t.tables {
		shifts[i] = table.Shift
	}
	return shifts
}

// Translate encrypts or decrypts message letter by letter. Characters outside
// the alphabet are copied as they are and do not consume a key position.
// Case is restored with unicode.ToUpper, so an upper-case rune whose lower
// case does not map back to it (İ lowers to i, which raises to I) comes out
// of a round trip as the plain upper-case form.
func (t *Translator) Translate(message string, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, string(mode))
	}

	t.mu.RLock()
	alphabet := t.alphabet
	tables := t.tables
	t.mu.RUnlock()

	if len(tables) == 0 {
		return "", ErrNoKey
	}

	var b strings.Builder
	b.Grow(len(message))

	cursor := 0
	for _, char := range message {
		isUpper := unicode.IsUpper(char)
		lower := char
		if isUpper {
			lower = unicode.ToLower(char)
		}

		if !containsRune(alphabet, lower) {
			b.WriteRune(char)
			continue
		}

		table := tables[cursor%len(tables)]
		translated := table.Apply(lower, mode)
		cursor++

		if isUpper {
			translated = unicode.ToUpper(translated)
		}
		b.WriteRune(translated)
	}

	return b.String(), nil
}

func (t *Translator) Encrypt(message string) (string, error) {
	return t.Translate(message, ModeEncrypt)
}

func (t *Translator) Decrypt(message string) (string, error) {
	return t.Translate(message, ModeDecrypt)
}

// ValidateKey validates if the key can produce a shift sequence
func ValidateKey(key string) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return nil
}

// ValidateAlphabet rejects empty alphabets, alphabets with repeated symbols
// and symbols that are not in lower case. Input is lower-cased before lookup,
// so an upper-case symbol could be written as output but never read back.
func ValidateAlphabet(alphabet string) error {
	if len(alphabet) == 0 {
		return ErrEmptyAlphabet
	}

	seen := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		if unicode.ToLower(r) != r || unicode.ToLower(unicode.ToUpper(r)) != r {
			return fmt.Errorf("%w: %q", ErrCasedSymbol, r)
		}
		if _, dup := seen[r]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

func containsRune(alphabet []rune, r rune) bool {
	for _, a := range alphabet {
		if a == r {
			return true
		}
	}
	return false
}
