package report

import (
	"testing"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/inventory"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)

	if s.TotalProducts != 0 || s.LowStockCount != 0 || s.OutOfStockCount != 0 || s.PendingSalesCount != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	for name, v := range map[string]decimal.Decimal{
		"inventory": s.TotalInventoryValue,
		"income":    s.TotalIncome,
		"expense":   s.TotalExpense,
		"balance":   s.Balance,
		"sales":     s.CompletedSalesTotal,
	} {
		if !v.IsZero() {
			t.Fatalf("%s: expected zero, got %s", name, v)
		}
	}
	for _, st := range inventory.Statuses {
		if s.StatusCounts[st] != 0 {
			t.Fatalf("status %s: expected 0, got %d", st, s.StatusCounts[st])
		}
	}
}

func TestSummarizeInventory(t *testing.T) {
	products := []model.Product{
		{ID: "p1", UnitPrice: dec("10"), StockQuantity: 0},
		{ID: "p2", UnitPrice: dec("5"), StockQuantity: 60},
		{ID: "p3", UnitPrice: dec("2.50"), StockQuantity: 10},
		{ID: "p4", UnitPrice: dec("1"), StockQuantity: 11},
	}

	s := Summarize(products, nil, nil)

	if s.TotalProducts != 4 {
		t.Fatalf("TotalProducts: expected 4, got %d", s.TotalProducts)
	}
	// 0*10 + 60*5 + 10*2.5 + 11*1
	if !s.TotalInventoryValue.Equal(dec("336")) {
		t.Fatalf("TotalInventoryValue: expected 336, got %s", s.TotalInventoryValue)
	}
	if s.LowStockCount != 1 {
		t.Fatalf("LowStockCount: expected 1, got %d", s.LowStockCount)
	}
	if s.OutOfStockCount != 1 {
		t.Fatalf("OutOfStockCount: expected 1, got %d", s.OutOfStockCount)
	}
	if s.AlertCount() != 2 {
		t.Fatalf("AlertCount: expected 2, got %d", s.AlertCount())
	}
	if s.StatusCounts[inventory.High] != 1 || s.StatusCounts[inventory.Medium] != 1 {
		t.Fatalf("StatusCounts: got %v", s.StatusCounts)
	}
}

func TestSummarizeCashBasis(t *testing.T) {
	entries := []model.FinancialEntry{
		{Type: model.EntryIncome, Status: model.EntryPaid, Amount: dec("1000")},
		{Type: model.EntryIncome, Status: model.EntryPending, Amount: dec("500")},
		{Type: model.EntryExpense, Status: model.EntryPaid, Amount: dec("300")},
	}

	s := Summarize(nil, nil, entries)

	if !s.TotalIncome.Equal(dec("1000")) {
		t.Fatalf("TotalIncome: expected 1000, got %s", s.TotalIncome)
	}
	if !s.TotalExpense.Equal(dec("300")) {
		t.Fatalf("TotalExpense: expected 300, got %s", s.TotalExpense)
	}
	if !s.Balance.Equal(dec("700")) {
		t.Fatalf("Balance: expected 700, got %s", s.Balance)
	}
}

func TestSummarizeSales(t *testing.T) {
	sales := []model.SaleRecord{
		{Total: dec("20"), Status: model.SalePending},
		{Total: dec("35.5"), Status: model.SaleCompleted},
		{Total: dec("10"), Status: model.SaleCancelled},
		{Total: dec("4.5"), Status: model.SaleCompleted},
		{Total: dec("1"), Status: model.SalePending},
	}

	s := Summarize(nil, sales, nil)

	if s.PendingSalesCount != 2 {
		t.Fatalf("PendingSalesCount: expected 2, got %d", s.PendingSalesCount)
	}
	if !s.CompletedSalesTotal.Equal(dec("40")) {
		t.Fatalf("CompletedSalesTotal: expected 40, got %s", s.CompletedSalesTotal)
	}
}

func TestSummarizeDoesNotMutateInputs(t *testing.T) {
	products := []model.Product{{ID: "p1", UnitPrice: dec("3"), StockQuantity: 4}}
	entries := []model.FinancialEntry{{Type: model.EntryIncome, Status: model.EntryPaid, Amount: dec("9")}}

	_ = Summarize(products, nil, entries)
	_ = Summarize(products, nil, entries)

	if products[0].StockQuantity != 4 || !products[0].UnitPrice.Equal(dec("3")) {
		t.Fatalf("product mutated: %+v", products[0])
	}
	if !entries[0].Amount.Equal(dec("9")) {
		t.Fatalf("entry mutated: %+v", entries[0])
	}
}
