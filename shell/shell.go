// Package shell runs the interactive translator menu and one-shot batch
// translation on top of a crypto.Translator.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"vigenere-translator/crypto"
)

const (
	cmdQuit     = "q"
	cmdKey      = "k"
	cmdAlphabet = "a"
)

// maxLine bounds a single input line.
const maxLine = 16 << 20

var errEOF = errors.New("shell: end of input")

// Shell reads commands and messages line by line.
type Shell struct {
	in         *bufio.Scanner
	out        io.Writer
	translator *crypto.Translator
	mode       crypto.Mode
}

func New(in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Shell{
		in:   scanner,
		out:  out,
		mode: crypto.ModeEncrypt,
	}
}

// WithTranslator skips the startup prompts and uses t.
func (s *Shell) WithTranslator(t *crypto.Translator) *Shell {
	s.translator = t
	return s
}

// WithMode sets the mode the loop starts in.
func (s *Shell) WithMode(m crypto.Mode) *Shell {
	if m.Valid() {
		s.mode = m
	}
	return s
}

// Translator returns the translator in use, nil before Setup.
func (s *Shell) Translator() *crypto.Translator {
	return s.translator
}

// Run prompts for a key and alphabet unless a translator was supplied, then
// serves the menu until q, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	if s.translator == nil {
		if err := s.Setup(); err != nil {
			if errors.Is(err, errEOF) {
				return nil
			}
			return err
		}
	}

	fmt.Fprintln(s.out, "Now, let's do some encryption! Simply type in the message you want to encrypt!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, err := s.prompt(fmt.Sprintf("Message to %s: ", s.mode))
		if errors.Is(err, errEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch line {
		case cmdQuit:
			return nil
		case cmdKey:
			if err := s.readKey("New key: "); err != nil {
				return ignoreEOF(err)
			}
			continue
		case cmdAlphabet:
			if err := s.readAlphabet("New alphabet: "); err != nil {
				return ignoreEOF(err)
			}
			continue
		case toggleChar(s.mode):
			s.mode = s.mode.Other()
			continue
		}

		translated, err := s.translator.Translate(line, s.mode)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(s.out, "%sed message: %s\n", s.mode, translated)
	}
}

// Setup asks for the initial key and an optional custom alphabet. Invalid
// input is reported and asked for again.
func (s *Shell) Setup() error {
	fmt.Fprintln(s.out, "Let's prepare our Vigenère cipher encryption by deciding on the key.")
	fmt.Fprintln(s.out, "The key can be numeric (each digit indicating a shift) or a word (each letter indicating a shift)")
	fmt.Fprintln(s.out, "Note: If the key only contains one number or character, the Vigenère cipher will act like a normal Caesar shift.")

	var key string
	for {
		line, err := s.prompt("Key: ")
		if err != nil {
			return err
		}
		if err := crypto.ValidateKey(line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		key = line
		break
	}

	for {
		line, err := s.prompt("By default, we use the Norwegian alphabet. If you want to define your own alphabet, write it now. If not, simply press enter.\n")
		if err != nil {
			return err
		}
		if line == "" {
			line = crypto.DefaultAlphabet
		}
		t, err := crypto.NewTranslatorWithAlphabet(key, line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		s.translator = t
		return nil
	}
}

func (s *Shell) readKey(label string) error {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return err
		}
		if err := s.translator.SetKey(line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		return nil
	}
}

// readAlphabet only swaps the alphabet; the key has to be entered again with
// k for the shifts to use it.
func (s *Shell) readAlphabet(label string) error {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return err
		}
		if err := s.translator.SetAlphabet(line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		return nil
	}
}

func (s *Shell) printMenu() {
	other := s.mode.Other()
	fmt.Fprintf(s.out, `
Press '%s' to change key
      '%s' to change alphabet
      '%s' to quit
      '%s' to %s
Or type message that you want to %s!

`, cmdKey, cmdAlphabet, cmdQuit, toggleChar(s.mode), other, s.mode)
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("shell: read input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// toggleChar is the first letter of the mode the shell is not in.
func toggleChar(m crypto.Mode) string {
	return string(m.Other())[:1]
}

func ignoreEOF(err error) error {
	if errors.Is(err, errEOF) {
		return nil
	}
	return err
}
