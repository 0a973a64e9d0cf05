package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	alphabet := []rune(english)

	tests := []struct {
		name string
		key  string
		want []int
	}{
		{name: "numeric", key: "321", want: []int{3, 2, 1}},
		{name: "zero digit", key: "0", want: []int{0}},
		{name: "textual", key: "cab", want: []int{3, 1, 2}},
		{name: "unknown characters shift zero", key: "a!Z", want: []int{1, 0, 0}},
		{name: "mixed digits and letters is textual", key: "a1", want: []int{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.key, alphabet)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyEmpty(t *testing.T) {
	_, err := ParseKey("", []rune(english))
	require.ErrorIs(t, err, ErrEmptyKey)
}

func TestShiftsFromDigitsRejectsLetters(t *testing.T) {
	_, err := ShiftsFromDigits("12a")
	require.Error(t, err)
}

func TestShiftsFromLettersUsesRunes(t *testing.T) {
	got := ShiftsFromLetters("åæ", []rune(DefaultAlphabet))
	assert.Equal(t, []int{29, 27}, got)
}

func TestShiftTableInverse(t *testing.T) {
	alphabet := []rune(DefaultAlphabet)

	for _, shift := range []int{0, 1, 5, 28, 29, 57} {
		table := NewShiftTable(alphabet, shift)
		for _, r := range alphabet {
			enc := table.Apply(r, ModeEncrypt)
			assert.Equal(t, r, table.Apply(enc, ModeDecrypt), "shift %d rune %q", shift, r)
		}
	}
}

func TestShiftTableUnknownRune(t *testing.T) {
	table := NewShiftTable([]rune("abc"), 1)
	assert.Equal(t, 'z', table.Apply('z', ModeEncrypt))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Encrypt ")
	require.NoError(t, err)
	assert.Equal(t, ModeEncrypt, m)
	assert.Equal(t, ModeDecrypt, m.Other())
	assert.Equal(t, ModeEncrypt, ModeDecrypt.Other())

	_, err = ParseMode("e")
	require.ErrorIs(t, err, ErrInvalidMode)
}
