package inventory

import (
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
)

// StockStatus is the alert tier derived from a product's on-hand quantity
type StockStatus string

const (
	OutOfStock StockStatus = "OUT_OF_STOCK"
	Low        StockStatus = "LOW"
	Medium     StockStatus = "MEDIUM"
	High       StockStatus = "HIGH"
)

// Statuses lists every status from emptiest to fullest
var Statuses = []StockStatus{OutOfStock, Low, Medium, High}

const (
	// LowStockThreshold is the highest quantity still raising a low-stock alert.
	// Reports count alerts against this same value.
	LowStockThreshold = 10

	// MediumStockThreshold is the highest quantity classified as MEDIUM
	MediumStockThreshold = 50
)

// Classify maps an on-hand quantity to its stock status
func Classify(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return OutOfStock
	case quantity <= LowStockThreshold:
		return Low
	case quantity <= MediumStockThreshold:
		return Medium
	default:
		return High
	}
}

// Value returns unit price times stock quantity, unrounded
func Value(p model.Product) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}

// Assessment is the derived stock view of one product
type Assessment struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	StockQuantity int             `json:"stock_quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Status        StockStatus     `json:"status"`
	Value         decimal.Decimal `json:"value"`
}

// Assess classifies and values a single product
func Assess(p model.Product) Assessment {
	return Assessment{
		ProductID:     p.ID,
		Name:          p.Name,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		UnitPrice:     p.UnitPrice,
		Status:        Classify(p.StockQuantity),
		Value:         Value(p),
	}
}

// AssessAll assesses products in input order
func AssessAll(products []model.Product) []Assessment {
	out := make([]Assessment, 0, len(products))
	for _, p := range products {
		out = append(out, Assess(p))
	}
	return out
}
