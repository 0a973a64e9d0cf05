package crypto

// ShiftTable holds the encrypt mapping for one shift amount and its inverse.
type ShiftTable struct {
	Shift   int
	encrypt map[rune]rune
	decrypt map[rune]rune
}

// NewShiftTable rotates alphabet left by shift mod len(alphabet). The
// encrypt mapping sends each symbol to the symbol at the same position of the
// rotated alphabet.
func NewShiftTable(alphabet []rune, shift int) ShiftTable {
	n := len(alphabet)
	table := ShiftTable{
		Shift:   shift,
		encrypt: make(map[rune]rune, n),
		decrypt: make(map[rune]rune, n),
	}
	if n == 0 {
		return table
	}

	offset := ((shift % n) + n) % n
	for i, r := range alphabet {
		shifted := alphabet[(i+offset)%n]
		table.encrypt[r] = shifted
		table.decrypt[shifted] = r
	}
	return table
}

// Apply maps r through the table. Runes the table does not know are
// returned unchanged.
func (st ShiftTable) Apply(r rune, mode Mode) rune {
	m := st.encrypt
	if mode == ModeDecrypt {
		m = st.decrypt
	}
	if out, ok := m[r]; ok {
		return out
	}
	return r
}
