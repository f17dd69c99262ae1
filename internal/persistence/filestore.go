package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore persists each collection as one JSON file under a data directory,
// the closest server-side analog to per-key browser storage.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore ensures the data directory exists and returns the store.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	logger.Info("file store ready", zap.String("dir", dir))
	return &FileStore{dir: dir, logger: logger}, nil
}

// Load reads the collection file, returning nil when it was never written.
func (s *FileStore) Load(_ context.Context, collection string) ([]byte, error) {
	data, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	return data, nil
}

// Save overwrites the collection file wholesale.
func (s *FileStore) Save(_ context.Context, collection string, data []byte) error {
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
