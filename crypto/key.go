package crypto

import (
	"fmt"
	"slices"
)

// ParseKey turns key into a shift sequence. A key made only of the digits
// 0-9 is numeric and every digit is a shift. Any other key is textual and
// each character shifts by its position in alphabet plus one, or 0 when the
// character is not in alphabet.
func ParseKey(key string, alphabet []rune) ([]int, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if isNumeric(key) {
		return ShiftsFromDigits(key)
	}
	return ShiftsFromLetters(key, alphabet), nil
}

// ShiftsFromDigits turns every digit of key into a shift of that size.
func ShiftsFromDigits(key string) ([]int, error) {
	shifts := make([]int, 0, len(key))
	for _, r := range key {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("crypto: %q is not a decimal digit", r)
		}
		shifts = append(shifts, int(r-'0'))
	}
	return shifts, nil
}

// ShiftsFromLetters looks up each key character in alphabet. The lookup is
// case-sensitive.
func ShiftsFromLetters(key string, alphabet []rune) []int {
	shifts := make([]int, 0, len(key))
	for _, r := range key {
		shifts = append(shifts, slices.Index(alphabet, r)+1)
	}
	return shifts
}

func isNumeric(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
