// Package portfolio holds the user's simulated holdings and the rules for
// mutating them: weighted-average cost basis on buys, whole-position removal
// on deletes, and snapshot persistence behind the Store interface.
package portfolio

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is one portfolio line item. Price is the average cost basis per
// unit, kept to 2 decimal places.
type Holding struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// ErrInvalidQuantity rejects buys whose quantity is not a positive number.
var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// ApplyBuy returns holdings with a buy applied. A first buy of a symbol
// inserts a new holding priced at unitPrice, or at latestClose when the
// caller supplied no positive price. A repeat buy merges into the existing
// holding: quantities sum and the cost basis becomes the weighted average of
// the old basis and the buy price, rounded once after the merge. The input
// slice is not modified.
func ApplyBuy(holdings []Holding, symbol string, quantity, unitPrice, latestClose float64) ([]Holding, error) {
	if !(quantity > 0) {
		return nil, ErrInvalidQuantity
	}
	sym := NormalizeSymbol(symbol)

	buyPrice := unitPrice
	if !(buyPrice > 0) {
		buyPrice = latestClose
	}

	out := make([]Holding, len(holdings))
	copy(out, holdings)

	for i, h := range out {
		if h.Symbol != sym {
			continue
		}
		oldQty := decimal.NewFromFloat(h.Quantity)
		addQty := decimal.NewFromFloat(quantity)
		totalQty := oldQty.Add(addQty)
		cost := oldQty.Mul(decimal.NewFromFloat(h.Price)).
			Add(addQty.Mul(decimal.NewFromFloat(buyPrice)))
		avg := cost.Div(totalQty).Round(2)

		out[i].Quantity, _ = totalQty.Float64()
		out[i].Price, _ = avg.Float64()
		return out, nil
	}

	return append(out, Holding{
		Symbol:   sym,
		Quantity: quantity,
		Price:    round2(buyPrice),
	}), nil
}

// ApplyRemove returns holdings without the given symbol. Removing a symbol
// that is not held returns the collection unchanged; deletes are idempotent.
func ApplyRemove(holdings []Holding, symbol string) []Holding {
	sym := NormalizeSymbol(symbol)
	out := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.Symbol != sym {
			out = append(out, h)
		}
	}
	return out
}

// NormalizeSymbol maps a user-supplied ticker onto its canonical form.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
