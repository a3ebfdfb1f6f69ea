package portfolio

import "context"

// Store persists the portfolio as a full snapshot. Load degrades to an empty
// collection when the persisted state is missing or unreadable; it never
// fails a request on account of prior corruption. Update runs fn inside the
// store's exclusive region so concurrent mutations cannot interleave their
// load-mutate-save cycles.
type Store interface {
	Load(ctx context.Context) ([]Holding, error)
	Save(ctx context.Context, holdings []Holding) error
	Update(ctx context.Context, fn func(holdings []Holding) ([]Holding, error)) ([]Holding, error)
}
