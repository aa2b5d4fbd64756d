package profile

// Encryptor seals documents before they reach the store. Sealing needs only
// the public key; opening requires the passphrase-protected private key,
// unlocked once per process.
type Encryptor interface {
	// Setup generates a key pair and protects the private key with passphrase.
	// Called during `profilekit config init`.
	Setup(passphrase string) error

	// Seal encrypts plaintext and returns it as store-safe text.
	Seal(plaintext []byte) (string, error)

	// Unlock decrypts the private key and returns an Opener for the session.
	// Returns an error if the passphrase is incorrect.
	Unlock(passphrase string) (Opener, error)

	// IsConfigured reports whether the key material exists.
	IsConfigured() bool
}

// Opener reverses Encryptor.Seal. It holds the unlocked key in memory only.
type Opener interface {
	Open(sealed string) ([]byte, error)
}
