package profile

import (
	"encoding/json"
	"io"
	"strings"
)

// Store is the durable key-value collaborator: string keys, string values,
// synchronous access, surviving process restarts.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(key, value string) error

	// Close releases the underlying resources.
	Close() error
}

// MediaVault holds the bytes behind "blob:" references: local uploads and
// AI edit results. Ids are opaque; the session never stores bytes itself.
type MediaVault interface {
	// PutMedia stores size bytes read from r under id with the given MIME type.
	PutMedia(id string, r io.Reader, size int64, mimeType string) error

	// GetMedia writes the bytes stored under id to w and returns their MIME type.
	GetMedia(id string, w io.Writer) (string, error)

	// ValidateSetup verifies that the vault is usable.
	ValidateSetup() error
}

// Document keys in the durable store.
const (
	KeyProfile      = "insta_profile_data"
	KeyInteractions = "insta_stats_interactions"
	KeyViews        = "insta_stats_views"
	KeyAudience     = "insta_stats_audience"
)

// Load reads and decodes the document stored under key. A missing key, a
// store error or text that does not decode into T all yield fallback(); the
// caller never sees an error.
func Load[T any](store Store, key string, fallback func() T, logger Logger) T {
	raw, ok, err := store.Get(key)
	if err != nil {
		logger.Warn("reading document failed, using default", "key", key, "error", err)
		return fallback()
	}
	if !ok {
		logger.Debug("no stored document, using default", "key", key)
		return fallback()
	}

	if strings.TrimSpace(raw) == "null" {
		logger.Warn("stored document is null, using default", "key", key)
		return fallback()
	}

	var doc T
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		logger.Warn("stored document is unreadable, using default", "key", key, "error", err)
		return fallback()
	}
	return doc
}

// Save encodes doc and writes it under key. Failures are logged and dropped.
func Save[T any](store Store, key string, doc T, logger Logger) {
	raw, err := json.Marshal(doc)
	if err != nil {
		logger.Error("encoding document failed", "key", key, "error", err)
		return
	}
	if err := store.Set(key, string(raw)); err != nil {
		logger.Error("writing document failed", "key", key, "error", err)
		return
	}
	logger.Debug("document saved", "key", key, "bytes", len(raw))
}
