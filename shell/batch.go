package shell

import (
	"fmt"
	"io"

	"vigenere-translator/crypto"
)

// Batch translates everything read from r as one message and writes the
// result to w. The key cursor runs across line breaks.
func Batch(r io.Reader, w io.Writer, t *crypto.Translator, mode crypto.Mode) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("shell: read input: %w", err)
	}

	out, err := t.Translate(string(data), mode)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("shell: write output: %w", err)
	}
	return nil
}
