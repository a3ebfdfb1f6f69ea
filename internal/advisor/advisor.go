// Package advisor turns a price history into a buy/sell/hold verdict.
package advisor

import (
	"errors"

	"finboard/internal/catalog"
)

// Verdict is the advised action for a symbol.
type Verdict string

const (
	Buy  Verdict = "Buy"
	Sell Verdict = "Sell"
	Hold Verdict = "Hold"
)

// ErrInsufficientData is returned when fewer than two price bars are
// available, so no change can be measured.
var ErrInsufficientData = errors.New("not enough price data for a recommendation")

// Momentum thresholds in percent. A close-to-close move inside the band is
// treated as noise.
const (
	buyThreshold  = 0.5
	sellThreshold = -0.5
)

var rationales = map[Verdict]string{
	Buy:  "The stock is showing upward momentum.",
	Sell: "The stock is showing downward momentum.",
	Hold: "The stock is stable with no significant movement.",
}

// Advice is the result of evaluating a price history.
type Advice struct {
	Verdict       Verdict
	Rationale     string
	LastPrice     float64
	PreviousPrice float64
}

// Recommend compares the last two closes and maps the percent change onto a
// fixed-threshold verdict. It is pure: same bars in, same advice out.
func Recommend(bars []catalog.PriceBar) (Advice, error) {
	if len(bars) < 2 {
		return Advice{}, ErrInsufficientData
	}
	prev := bars[len(bars)-2].Close
	last := bars[len(bars)-1].Close
	change := (last - prev) / prev * 100

	verdict := Hold
	switch {
	case change > buyThreshold:
		verdict = Buy
	case change < sellThreshold:
		verdict = Sell
	}
	return Advice{
		Verdict:       verdict,
		Rationale:     rationales[verdict],
		LastPrice:     last,
		PreviousPrice: prev,
	}, nil
}
