package crypto

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeEncrypt Mode = "encrypt"
	ModeDecrypt Mode = "decrypt"
)

// ParseMode accepts "encrypt" or "decrypt", ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

func (m Mode) Valid() bool {
	return m == ModeEncrypt || m == ModeDecrypt
}

// Other returns the opposite direction.
func (m Mode) Other() Mode {
	if m == ModeDecrypt {
		return ModeEncrypt
	}
	return ModeDecrypt
}

func (m Mode) String() string { return string(m) }
