package store

import (
	"fmt"
	"os"
	"path/filepath"

	"profilekit/internal/config"
	"profilekit/internal/profile"
)

// NewStoreFromConfig creates a Store implementation based on the store config type.
func NewStoreFromConfig(cfg config.StoreConfig, deviceID string, logger profile.Logger) (profile.Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for filesystem store")
		}
		s, err := NewFileSystemStore(filepath.Join(cfg.DataDir, "documents"))
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite store")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		s, err := NewSQLiteStore(filepath.Join(cfg.DataDir, deviceID+".db"), profile.RealClock{})
		if err != nil {
			return nil, err
		}
		return s, nil
	case "badger":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for badger store")
		}
		s, err := OpenBadgerStore(BadgerOptions{Path: filepath.Join(cfg.DataDir, "badger"), Logger: logger})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
