package store

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"repairshop/internal/infra"
)

// FileStore keeps one JSON file per key under dir.
type FileStore struct {
	dir    string
	logger *slog.Logger
	mu     sync.Mutex
}

func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindStoreFailure, "create store directory", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, infra.NotFound(key)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "read "+key, err)
	}
	return body, nil
}

// Save writes to a temp file and renames it over the old document so a
// crash never leaves a half-written collection behind.
func (s *FileStore) Save(_ context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "create temp file for "+key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "write "+key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "close "+key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "replace "+key, err)
	}
	return nil
}
