package encryption

import (
	"fmt"

	"profilekit/internal/config"
	"profilekit/internal/profile"
)

// NewEncryptorFromConfig creates an Encryptor based on the configuration
// type. It returns nil, nil when encryption is disabled.
func NewEncryptorFromConfig(cfg config.EncryptionConfig) (profile.Encryptor, error) {
	switch cfg.Type {
	case "none", "":
		return nil, nil
	case "age":
		return NewAgeEncryptor(cfg), nil
	case "test":
		return NewTestEncryptor(), nil
	default:
		return nil, fmt.Errorf("unknown encryption type: %q", cfg.Type)
	}
}
