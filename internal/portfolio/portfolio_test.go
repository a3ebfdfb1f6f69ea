package portfolio

import (
	"errors"
	"reflect"
	"testing"
)

func TestApplyBuyRejectsBadQuantity(t *testing.T) {
	for _, qty := range []float64{0, -1} {
		if _, err := ApplyBuy(nil, "AAPL", qty, 100, 100); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("qty %v: err = %v, want ErrInvalidQuantity", qty, err)
		}
	}
}

func TestApplyBuyNewHolding(t *testing.T) {
	t.Run("explicit price wins", func(t *testing.T) {
		got, err := ApplyBuy(nil, "aapl", 10, 95.5, 183.05)
		if err != nil {
			t.Fatalf("ApplyBuy: %v", err)
		}
		want := []Holding{{Symbol: "AAPL", Quantity: 10, Price: 95.5}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	})

	t.Run("falls back to latest close", func(t *testing.T) {
		got, err := ApplyBuy(nil, "AAPL", 10, 0, 183.05)
		if err != nil {
			t.Fatalf("ApplyBuy: %v", err)
		}
		if got[0].Price != 183.05 {
			t.Fatalf("price = %v, want latest close 183.05", got[0].Price)
		}
	})
}

func TestApplyBuyMergesWithWeightedAverage(t *testing.T) {
	holdings, err := ApplyBuy(nil, "AAPL", 10, 100, 0)
	if err != nil {
		t.Fatalf("first buy: %v", err)
	}
	holdings, err = ApplyBuy(holdings, "AAPL", 10, 120, 0)
	if err != nil {
		t.Fatalf("second buy: %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("expected one merged holding, got %+v", holdings)
	}
	if holdings[0].Quantity != 20 {
		t.Fatalf("quantity = %v, want 20", holdings[0].Quantity)
	}
	if holdings[0].Price != 110.00 {
		t.Fatalf("price = %v, want 110.00", holdings[0].Price)
	}
}

func TestApplyBuyRoundsOncePostMerge(t *testing.T) {
	holdings, _ := ApplyBuy(nil, "NVDA", 3, 900.10, 0)
	holdings, _ = ApplyBuy(holdings, "NVDA", 1, 913.57, 0)
	// (3*900.10 + 1*913.57) / 4 = 903.4675 -> 903.47
	if holdings[0].Price != 903.47 {
		t.Fatalf("price = %v, want 903.47", holdings[0].Price)
	}
}

func TestApplyBuyDoesNotMutateInput(t *testing.T) {
	orig := []Holding{{Symbol: "AAPL", Quantity: 10, Price: 100}}
	if _, err := ApplyBuy(orig, "AAPL", 10, 120, 0); err != nil {
		t.Fatalf("ApplyBuy: %v", err)
	}
	if orig[0].Quantity != 10 || orig[0].Price != 100 {
		t.Fatalf("input slice was mutated: %+v", orig)
	}
}

func TestApplyRemove(t *testing.T) {
	holdings := []Holding{
		{Symbol: "AAPL", Quantity: 10, Price: 100},
		{Symbol: "MSFT", Quantity: 2, Price: 410},
	}

	t.Run("removes whole position case-insensitively", func(t *testing.T) {
		got := ApplyRemove(holdings, "aapl")
		if len(got) != 1 || got[0].Symbol != "MSFT" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("absent symbol is a no-op", func(t *testing.T) {
		got := ApplyRemove(holdings, "TSLA")
		if !reflect.DeepEqual(got, holdings) {
			t.Fatalf("got %+v, want unchanged %+v", got, holdings)
		}
	})
}
