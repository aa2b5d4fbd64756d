package ai

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CredentialEnvVars are consulted in order before the credential file.
var CredentialEnvVars = []string{"PROFILEKIT_API_KEY", "GEMINI_API_KEY", "API_KEY"}

// LookupCredential returns the first non-empty API key from the environment
// or, failing that, the contents of credentialFile. A missing file is not an
// error; the result is then "".
func LookupCredential(credentialFile string) (string, error) {
	for _, name := range CredentialEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v, nil
		}
	}
	if credentialFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(credentialFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading credential file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SaveCredential writes key to path, readable by the owner only.
func SaveCredential(path, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating credential directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(key+"\n"), 0600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	return nil
}
