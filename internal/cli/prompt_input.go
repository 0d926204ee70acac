package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errInputClosed = errors.New("input closed")

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}

// promptLine writes message and reads one trimmed answer.
func promptLine(in io.Reader, out io.Writer, message string) (string, error) {
	fmt.Fprint(out, message)
	text, err := readPromptLine(in)
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", fmt.Errorf("%w: %w", errInputClosed, err)
	}
	return strings.TrimSpace(text), nil
}

// waitForWord reads "> " prompted lines until one equals word, ignoring
// case. Blank lines (such as the LF of a CRLF pair) are skipped silently;
// anything else gets a reminder.
func waitForWord(in io.Reader, out io.Writer, word string) error {
	for {
		fmt.Fprint(out, "> ")
		text, err := readPromptLine(in)
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, word) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w while waiting for %q", errInputClosed, word)
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(out, "Waiting for '%s'...\n", word)
	}
}
