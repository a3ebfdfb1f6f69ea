package portfolio

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "portfolio.json"))
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	s := newTestFileStore(t)
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load of missing file = %+v, want empty", got)
	}
}

func TestFileStoreCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load of corrupt file = %+v, want empty", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	want := []Holding{
		{Symbol: "AAPL", Quantity: 10, Price: 183.05},
		{Symbol: "MSFT", Quantity: 2.5, Price: 410.11},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}

	// Saving what was just loaded keeps the snapshot byte-identical.
	before, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	after, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("save(load()) changed the snapshot bytes")
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []Holding{{Symbol: "AAPL", Quantity: 1, Price: 100}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, []Holding{{Symbol: "MSFT", Quantity: 1, Price: 400}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := s.Load(ctx)
	if len(got) != 1 || got[0].Symbol != "MSFT" {
		t.Fatalf("save is not a full overwrite: %+v", got)
	}
}

func TestFileStoreUpdateSerializesMutations(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	// Concurrent buys under Update must all land; this was the lost-update
	// race in the unguarded load-mutate-save cycle.
	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, func(h []Holding) ([]Holding, error) {
				return ApplyBuy(h, "AAPL", 1, 100, 0)
			})
			if err != nil {
				t.Errorf("Update: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := s.Load(ctx)
	if len(got) != 1 || got[0].Quantity != n {
		t.Fatalf("after %d concurrent buys: %+v", n, got)
	}
}

func TestFileStoreUpdateErrorDoesNotPersist(t *testing.T) {
	s := newTestFileStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, []Holding{{Symbol: "AAPL", Quantity: 1, Price: 100}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, err := s.Update(ctx, func(h []Holding) ([]Holding, error) {
		return ApplyBuy(h, "AAPL", -5, 0, 0)
	})
	if err == nil {
		t.Fatal("expected error from Update")
	}
	got, _ := s.Load(ctx)
	if len(got) != 1 || got[0].Quantity != 1 {
		t.Fatalf("failed Update changed state: %+v", got)
	}
}
