package db

import (
	"context"
	"fmt"
)

// Holding is one persisted portfolio row.
type Holding struct {
	Symbol   string
	Quantity float64
	Price    float64
}

// ListHoldings returns every holding in insertion order.
func (d *Database) ListHoldings(ctx context.Context) ([]Holding, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT symbol, quantity, price
		FROM holdings
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query holdings: %w", err)
	}
	defer rows.Close()

	holdings := []Holding{}
	for rows.Next() {
		var h Holding
		if err := rows.Scan(&h.Symbol, &h.Quantity, &h.Price); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// ReplaceHoldings swaps the whole snapshot for holdings in one transaction;
// the table never holds a mix of old and new rows.
func (d *Database) ReplaceHoldings(ctx context.Context, holdings []Holding) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM holdings`); err != nil {
		return fmt.Errorf("clear holdings: %w", err)
	}
	for _, h := range holdings {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO holdings (symbol, quantity, price)
			VALUES (?, ?, ?)
		`, h.Symbol, h.Quantity, h.Price); err != nil {
			return fmt.Errorf("insert holding %s: %w", h.Symbol, err)
		}
	}
	return tx.Commit()
}
