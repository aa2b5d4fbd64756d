package encryption

import (
	"encoding/base64"
	"fmt"
	"strings"

	"profilekit/internal/profile"
)

// testPrefix marks text sealed by TestEncryptor.
const testPrefix = "PKTEST:"

// TestEncryptor is a deterministic stand-in for tests and the "test" config
// type. Sealed text is the prefix followed by base64 of the plaintext, so it
// differs from the JSON it wraps while staying trivially reversible.
type TestEncryptor struct {
	setupCalled bool
}

var _ profile.Encryptor = (*TestEncryptor)(nil)

// NewTestEncryptor creates a new TestEncryptor.
func NewTestEncryptor() *TestEncryptor {
	return &TestEncryptor{}
}

func (e *TestEncryptor) Setup(passphrase string) error {
	e.setupCalled = true
	return nil
}

func (e *TestEncryptor) Seal(plaintext []byte) (string, error) {
	return testPrefix + base64.StdEncoding.EncodeToString(plaintext), nil
}

func (e *TestEncryptor) Unlock(passphrase string) (profile.Opener, error) {
	return TestOpener{}, nil
}

func (e *TestEncryptor) IsConfigured() bool {
	return true
}

// TestOpener reverses TestEncryptor.Seal.
type TestOpener struct{}

var _ profile.Opener = TestOpener{}

func (TestOpener) Open(sealed string) ([]byte, error) {
	payload, ok := strings.CutPrefix(sealed, testPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid test encryption header")
	}
	plaintext, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding test payload: %w", err)
	}
	return plaintext, nil
}
