package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the portfolio as one JSON array file. Every save rewrites
// the whole snapshot through a temp file and rename, so readers never see a
// partial write. The mutex serializes mutations within the process; the
// original implementation had none and could lose a concurrent buy.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot. A missing or unparsable file yields an empty
// portfolio rather than an error.
func (s *FileStore) Load(ctx context.Context) ([]Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(), nil
}

// Save overwrites the snapshot with holdings.
func (s *FileStore) Save(ctx context.Context, holdings []Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(holdings)
}

// Update applies fn to the current snapshot and persists the result, all
// under the store lock.
func (s *FileStore) Update(ctx context.Context, fn func([]Holding) ([]Holding, error)) ([]Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(s.loadLocked())
	if err != nil {
		return nil, err
	}
	if err := s.saveLocked(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FileStore) loadLocked() []Holding {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Holding{}
	}
	var holdings []Holding
	if err := json.Unmarshal(data, &holdings); err != nil {
		return []Holding{}
	}
	if holdings == nil {
		holdings = []Holding{}
	}
	return holdings
}

func (s *FileStore) saveLocked(holdings []Holding) error {
	if holdings == nil {
		holdings = []Holding{}
	}
	data, err := json.MarshalIndent(holdings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create portfolio directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".portfolio-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
