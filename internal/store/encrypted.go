package store

import (
	"fmt"

	"profilekit/internal/profile"
)

// EncryptedStore seals values before handing them to the wrapped store and
// opens them on the way out. Keys are stored in the clear.
type EncryptedStore struct {
	inner  profile.Store
	sealer profile.Encryptor
	opener profile.Opener
}

var _ profile.Store = (*EncryptedStore)(nil)

// NewEncryptedStore wraps inner. opener may be nil for a write-only store;
// Get then fails for every present key.
func NewEncryptedStore(inner profile.Store, sealer profile.Encryptor, opener profile.Opener) *EncryptedStore {
	return &EncryptedStore{inner: inner, sealer: sealer, opener: opener}
}

func (s *EncryptedStore) Get(key string) (string, bool, error) {
	sealed, ok, err := s.inner.Get(key)
	if err != nil || !ok {
		return "", ok, err
	}
	if s.opener == nil {
		return "", false, fmt.Errorf("reading %s: store is locked", key)
	}
	plaintext, err := s.opener.Open(sealed)
	if err != nil {
		return "", false, fmt.Errorf("decrypting %s: %w", key, err)
	}
	return string(plaintext), true, nil
}

func (s *EncryptedStore) Set(key, value string) error {
	sealed, err := s.sealer.Seal([]byte(value))
	if err != nil {
		return fmt.Errorf("encrypting %s: %w", key, err)
	}
	return s.inner.Set(key, sealed)
}

func (s *EncryptedStore) Close() error { return s.inner.Close() }
