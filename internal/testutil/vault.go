package testutil

import (
	"profilekit/internal/vault"
)

// NewTestVault creates a new in-memory media vault for testing.
func NewTestVault() *vault.MemoryVault {
	return vault.NewMemoryVault()
}
