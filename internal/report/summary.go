package report

import (
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/inventory"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard roll-up of inventory, sales and finance
type Summary struct {
	TotalProducts       int                           `json:"total_products"`
	LowStockCount       int                           `json:"low_stock_count"`
	OutOfStockCount     int                           `json:"out_of_stock_count"`
	TotalInventoryValue decimal.Decimal               `json:"total_inventory_value"`
	TotalIncome         decimal.Decimal               `json:"total_income"`
	TotalExpense        decimal.Decimal               `json:"total_expense"`
	Balance             decimal.Decimal               `json:"balance"`
	PendingSalesCount   int                           `json:"pending_sales_count"`
	CompletedSalesTotal decimal.Decimal               `json:"completed_sales_total"`
	StatusCounts        map[inventory.StockStatus]int `json:"status_counts"`
}

// Summarize reduces the three collections into a Summary.
// Income and expense are cash basis: only PAID entries count.
func Summarize(products []model.Product, sales []model.SaleRecord, entries []model.FinancialEntry) Summary {
	s := Summary{
		TotalInventoryValue: decimal.Zero,
		TotalIncome:         decimal.Zero,
		TotalExpense:        decimal.Zero,
		CompletedSalesTotal: decimal.Zero,
		StatusCounts:        make(map[inventory.StockStatus]int, len(inventory.Statuses)),
	}
	for _, st := range inventory.Statuses {
		s.StatusCounts[st] = 0
	}

	for _, p := range products {
		a := inventory.Assess(p)
		s.TotalProducts++
		s.TotalInventoryValue = s.TotalInventoryValue.Add(a.Value)
		s.StatusCounts[a.Status]++
		switch a.Status {
		case inventory.Low:
			s.LowStockCount++
		case inventory.OutOfStock:
			s.OutOfStockCount++
		}
	}

	for _, e := range entries {
		if e.Status != model.EntryPaid {
			continue
		}
		switch e.Type {
		case model.EntryIncome:
			s.TotalIncome = s.TotalIncome.Add(e.Amount)
		case model.EntryExpense:
			s.TotalExpense = s.TotalExpense.Add(e.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)

	for _, sale := range sales {
		switch sale.Status {
		case model.SalePending:
			s.PendingSalesCount++
		case model.SaleCompleted:
			s.CompletedSalesTotal = s.CompletedSalesTotal.Add(sale.Total)
		}
	}

	return s
}

// AlertCount is the number of products at or below the low-stock threshold,
// out-of-stock included
func (s Summary) AlertCount() int {
	return s.LowStockCount + s.OutOfStockCount
}
