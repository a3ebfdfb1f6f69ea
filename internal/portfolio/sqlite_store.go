package portfolio

import (
	"context"
	"sync"

	"finboard/pkg/db"
)

// SQLiteStore persists the snapshot in a holdings table. Saves replace the
// whole table in one transaction; the mutex extends exclusion across a full
// Update cycle, mirroring the file store.
type SQLiteStore struct {
	database *db.Database
	mu       sync.Mutex
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(database *db.Database) *SQLiteStore {
	return &SQLiteStore{database: database}
}

func (s *SQLiteStore) Load(ctx context.Context) ([]Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *SQLiteStore) Save(ctx context.Context, holdings []Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, holdings)
}

func (s *SQLiteStore) Update(ctx context.Context, fn func([]Holding) ([]Holding, error)) ([]Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadLocked(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := fn(current)
	if err != nil {
		return nil, err
	}
	if err := s.saveLocked(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SQLiteStore) loadLocked(ctx context.Context) ([]Holding, error) {
	rows, err := s.database.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	holdings := make([]Holding, 0, len(rows))
	for _, r := range rows {
		holdings = append(holdings, Holding{Symbol: r.Symbol, Quantity: r.Quantity, Price: r.Price})
	}
	return holdings, nil
}

func (s *SQLiteStore) saveLocked(ctx context.Context, holdings []Holding) error {
	rows := make([]db.Holding, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, db.Holding{Symbol: h.Symbol, Quantity: h.Quantity, Price: h.Price})
	}
	return s.database.ReplaceHoldings(ctx, rows)
}
