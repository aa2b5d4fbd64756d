package vault

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"profilekit/internal/profile"
)

type memoryItem struct {
	data     []byte
	mimeType string
}

// MemoryVault keeps media in memory. Safe for concurrent use.
type MemoryVault struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

// NewMemoryVault creates an empty in-memory vault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{items: make(map[string]memoryItem)}
}

// PutMedia stores media under id, replacing any previous bytes.
func (m *MemoryVault) PutMedia(id string, r io.Reader, size int64, mimeType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read media: %w", err)
	}
	if int64(len(data)) != size {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id] = memoryItem{data: data, mimeType: mimeType}
	return nil
}

// GetMedia writes the media stored under id to w.
func (m *MemoryVault) GetMedia(id string, w io.Writer) (string, error) {
	m.mu.RLock()
	item, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", profile.ErrMediaNotFound, id)
	}

	if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
		return "", fmt.Errorf("failed to write media: %w", err)
	}
	return item.mimeType, nil
}

// ValidateSetup always succeeds for the in-memory vault.
func (m *MemoryVault) ValidateSetup() error {
	return nil
}

var _ profile.MediaVault = (*MemoryVault)(nil)
