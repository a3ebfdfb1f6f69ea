// Package catalog holds the static reference data served by the dashboard:
// per-symbol display names, OHLC price history, and news items. The catalog
// is built once at startup and is read-only afterwards, so it can be shared
// across request handlers without locking.
package catalog

import (
	"fmt"
	"strings"
)

// PriceBar is one OHLC record for a trading period.
type PriceBar struct {
	Date  string  `json:"date" yaml:"date"`
	Open  float64 `json:"open" yaml:"open"`
	High  float64 `json:"high" yaml:"high"`
	Low   float64 `json:"low" yaml:"low"`
	Close float64 `json:"close" yaml:"close"`
}

// NewsItem is a single headline attached to a symbol.
type NewsItem struct {
	Date        string `json:"date" yaml:"date"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Entry is the full reference record for one ticker symbol.
type Entry struct {
	Symbol string
	Name   string
	Bars   []PriceBar // chronological, never empty for a stored entry
	News   []NewsItem
}

// LatestClose returns the close of the most recent price bar.
func (e Entry) LatestClose() float64 {
	return e.Bars[len(e.Bars)-1].Close
}

// SearchResult is the symbol/name pair returned by Search.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Catalog is an immutable symbol index preserving insertion order.
type Catalog struct {
	order   []string
	entries map[string]Entry
}

// New builds a Catalog from entries, validating each one. Symbols are
// normalized to uppercase and must be unique; every entry needs at least one
// price bar so LatestClose is always defined.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		sym := strings.ToUpper(strings.TrimSpace(e.Symbol))
		if sym == "" {
			return nil, fmt.Errorf("catalog entry %q: empty symbol", e.Name)
		}
		if _, dup := c.entries[sym]; dup {
			return nil, fmt.Errorf("catalog entry %s: duplicate symbol", sym)
		}
		if len(e.Bars) == 0 {
			return nil, fmt.Errorf("catalog entry %s: no price bars", sym)
		}
		e.Symbol = sym
		c.order = append(c.order, sym)
		c.entries[sym] = e
	}
	return c, nil
}

// Lookup returns the entry for symbol (case-insensitive exact match).
func (c *Catalog) Lookup(symbol string) (Entry, bool) {
	e, ok := c.entries[strings.ToUpper(symbol)]
	return e, ok
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int { return len(c.order) }

// Search returns up to limit entries whose symbol or name contains query,
// ASCII-case-insensitively, in the catalog's insertion order. An empty query
// matches nothing rather than everything.
func (c *Catalog) Search(query string, limit int) []SearchResult {
	results := []SearchResult{}
	q := asciiLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return results
	}
	for _, sym := range c.order {
		e := c.entries[sym]
		if strings.Contains(asciiLower(e.Symbol), q) || strings.Contains(asciiLower(e.Name), q) {
			results = append(results, SearchResult{Symbol: e.Symbol, Name: e.Name})
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// asciiLower folds A-Z only. Matching is deliberately ASCII-case-insensitive,
// not locale-aware collation.
func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		b.WriteByte(ch)
	}
	return b.String()
}
