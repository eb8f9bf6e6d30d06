package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// prompt prints label and reads one trimmed line. EOF after partial
// input returns the partial line.
func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptDefault shows the current value and keeps it on empty input.
func promptDefault(r *bufio.Reader, w io.Writer, label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	value, err := prompt(r, w, label)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// promptPassword reads a password without echo when fd is a terminal,
// and falls back to a plain line read otherwise.
func promptPassword(r *bufio.Reader, w io.Writer, fd int) (string, error) {
	if !isTerminal(fd) {
		return prompt(r, w, "Password")
	}
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// confirm asks a yes/no question; only "y" or "yes" count as yes.
func confirm(r *bufio.Reader, w io.Writer, question string) (bool, error) {
	answer, err := prompt(r, w, question+" [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
