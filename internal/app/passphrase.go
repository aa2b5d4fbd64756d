package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvPassphrase supplies the encryption passphrase without a prompt.
const EnvPassphrase = "PROFILEKIT_PASSPHRASE"

// ErrNoPassphrase is returned when encryption is enabled, the passphrase
// variable is unset and stdin is not a terminal.
var ErrNoPassphrase = errors.New("passphrase required: set " + EnvPassphrase + " or run from a terminal")

// PassphraseFunc returns the passphrase for the document encryption key.
// confirm is true when a new key is being created.
type PassphraseFunc func(confirm bool) (string, error)

// TerminalPassphrase reads PROFILEKIT_PASSPHRASE, or prompts on the
// controlling terminal with echo disabled.
func TerminalPassphrase(confirm bool) (string, error) {
	if p := os.Getenv(EnvPassphrase); p != "" {
		return p, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoPassphrase
	}
	return promptPassphrase(os.Stderr, func() ([]byte, error) { return term.ReadPassword(fd) }, confirm)
}

func promptPassphrase(w io.Writer, read func() ([]byte, error), confirm bool) (string, error) {
	fmt.Fprint(w, "Passphrase: ")
	first, err := read()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	pass := strings.TrimRight(string(first), "\r\n")
	if pass == "" {
		return "", fmt.Errorf("passphrase must not be empty")
	}
	if !confirm {
		return pass, nil
	}

	fmt.Fprint(w, "Confirm passphrase: ")
	second, err := read()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	if strings.TrimRight(string(second), "\r\n") != pass {
		return "", fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}
