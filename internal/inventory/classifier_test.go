package inventory

import (
	"testing"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		qty  int
		want StockStatus
	}{
		{0, OutOfStock},
		{1, Low},
		{10, Low},
		{11, Medium},
		{50, Medium},
		{51, High},
		{10000, High},
	}
	for _, tc := range cases {
		if got := Classify(tc.qty); got != tc.want {
			t.Fatalf("Classify(%d): expected %s, got %s", tc.qty, tc.want, got)
		}
	}
}

func TestClassifyPartitionsRange(t *testing.T) {
	prev := Classify(0)
	changes := 0
	for q := 0; q <= 200; q++ {
		got := Classify(q)
		known := false
		for _, s := range Statuses {
			if got == s {
				known = true
			}
		}
		if !known {
			t.Fatalf("Classify(%d): unknown status %q", q, got)
		}
		if got != prev {
			changes++
			prev = got
		}
	}
	// Each tier is one contiguous range.
	if changes != len(Statuses)-1 {
		t.Fatalf("expected %d tier changes, got %d", len(Statuses)-1, changes)
	}
}

func TestAssessAllScenario(t *testing.T) {
	products := []model.Product{
		{ID: "p1", UnitPrice: decimal.NewFromInt(10), StockQuantity: 0},
		{ID: "p2", UnitPrice: decimal.NewFromInt(5), StockQuantity: 60},
	}

	got := AssessAll(products)
	if len(got) != 2 {
		t.Fatalf("AssessAll: expected 2, got %d", len(got))
	}
	if got[0].Status != OutOfStock || got[1].Status != High {
		t.Fatalf("statuses: got [%s %s]", got[0].Status, got[1].Status)
	}

	total := decimal.Zero
	for _, a := range got {
		total = total.Add(a.Value)
	}
	if !total.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("total value: expected 300, got %s", total)
	}
}

func TestValueKeepsExactDecimals(t *testing.T) {
	p := model.Product{UnitPrice: decimal.RequireFromString("0.10"), StockQuantity: 3}
	if got := Value(p); !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("Value: expected 0.3, got %s", got)
	}
}
